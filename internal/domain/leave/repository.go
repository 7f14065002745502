package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// GetActiveByEmployee returns the employee's PENDING and APPROVED
	// requests; only those block an overlapping submission.
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error

	// Delete removes a request; only the cancellation flow may call it.
	Delete(ctx context.Context, id string) error
}

// LeaveBalanceRepository - interface for leave_balances table.
// One row per (employee, leaveType, year); rows are never deleted within a year.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Update(ctx context.Context, balance LeaveBalance) error
}
