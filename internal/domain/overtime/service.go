package overtime

import (
	"context"
)

// OvertimeService defines business logic for overtime validation, approval
// and premium-pay calculation.
type OvertimeService interface {
	// SubmitOvertimeRequest runs the ordered validation chain and persists a
	// PENDING request. The first failing check wins.
	SubmitOvertimeRequest(ctx context.Context, req SubmitOvertimeRequest) (OvertimeResponse, error)

	// ApproveOvertimeRequest re-checks eligibility (classification may have
	// changed since submission) and returns the recomputed premium pay.
	// The pay is not persisted; downstream payroll recomputes independently.
	ApproveOvertimeRequest(ctx context.Context, requestID string) (OvertimeApprovalResponse, error)

	// RejectOvertimeRequest requires a non-empty note.
	RejectOvertimeRequest(ctx context.Context, requestID, note string) (OvertimeResponse, error)

	GetOvertimeRequest(ctx context.Context, requestID string) (OvertimeResponse, error)

	ListOvertimeRequests(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
}
