package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
)

type OvertimeRepository struct {
	mu       sync.RWMutex
	requests map[string]overtime.OvertimeRequest
}

func NewOvertimeRepository() *OvertimeRepository {
	return &OvertimeRepository{requests: make(map[string]overtime.OvertimeRequest)}
}

func (r *OvertimeRepository) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	r.requests[request.ID] = request
	return request, nil
}

func (r *OvertimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
	}
	return request, nil
}

func (r *OvertimeRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []overtime.OvertimeRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *OvertimeRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []overtime.OvertimeRequest
	for _, request := range r.requests {
		if request.EmployeeID != employeeID {
			continue
		}
		if request.Status != overtime.OvertimeStatusPending && request.Status != overtime.OvertimeStatusApproved {
			continue
		}
		out = append(out, request)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *OvertimeRepository) GetApprovedInRange(ctx context.Context, start, end time.Time) ([]overtime.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []overtime.OvertimeRequest
	for _, request := range r.requests {
		if request.Status != overtime.OvertimeStatusApproved {
			continue
		}
		if request.StartTime.Before(start) || !request.StartTime.Before(end) {
			continue
		}
		out = append(out, request)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *OvertimeRepository) Update(ctx context.Context, request overtime.OvertimeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.requests[request.ID]
	if !ok {
		return overtime.ErrOvertimeNotFound
	}
	request.CreatedAt = existing.CreatedAt
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}
