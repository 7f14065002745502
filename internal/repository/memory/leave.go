package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
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

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *LeaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *LeaveRequestRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID != employeeID {
			continue
		}
		if request.Status != leave.LeaveStatusPending && request.Status != leave.LeaveStatusApproved {
			continue
		}
		out = append(out, request)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.requests[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.CreatedAt = existing.CreatedAt
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *LeaveRequestRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(r.requests, id)
	return nil
}

type LeaveBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]leave.LeaveBalance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{balances: make(map[string]leave.LeaveBalance)}
}

func (r *LeaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if balance.ID == "" {
		balance.ID = uuid.NewString()
	}
	now := time.Now()
	balance.CreatedAt = now
	balance.UpdatedAt = now

	r.balances[balance.ID] = balance
	return balance, nil
}

func (r *LeaveBalanceRepository) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, balance := range r.balances {
		if balance.EmployeeID == employeeID && balance.LeaveTypeID == leaveTypeID && balance.Year == year {
			return balance, nil
		}
	}
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (r *LeaveBalanceRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeaveBalance
	for _, balance := range r.balances {
		if balance.EmployeeID == employeeID && balance.Year == year {
			out = append(out, balance)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveTypeID < out[j].LeaveTypeID })
	return out, nil
}

func (r *LeaveBalanceRepository) Update(ctx context.Context, balance leave.LeaveBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.balances[balance.ID]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	balance.CreatedAt = existing.CreatedAt
	balance.UpdatedAt = time.Now()
	r.balances[balance.ID] = balance
	return nil
}
