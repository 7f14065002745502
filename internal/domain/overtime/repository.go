package overtime

import (
	"context"
	"time"
)

// OvertimeRepository - interface for overtime_requests table
type OvertimeRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]OvertimeRequest, error)

	// GetActiveByEmployee returns the employee's PENDING and APPROVED
	// requests; these count against the weekly cap and the overlap check.
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]OvertimeRequest, error)

	// GetApprovedInRange returns all approved requests starting within
	// [start, end), across employees. Feeds the overtime ranking report.
	GetApprovedInRange(ctx context.Context, start, end time.Time) ([]OvertimeRequest, error)

	Update(ctx context.Context, request OvertimeRequest) error
}
