// Package memory provides map-backed repository implementations that keep
// the service layer testable without postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

// Seed inserts or replaces an employee record.
func (r *EmployeeRepository) Seed(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) IsOvertimeEligible(ctx context.Context, id string) (bool, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return e.OvertimeEligible, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
