package leave

import (
	"context"
)

// LeaveService defines business logic for the leave request lifecycle and
// its reconciliation against attendance.
type LeaveService interface {
	// SubmitLeaveRequest validates and persists a PENDING request. Attendance
	// conflicts flag the request but never block it; an overlapping active
	// request does.
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// ApproveLeaveRequest re-validates the balance, recomputes conflicts and
	// deducts the effective working days, all in one transaction.
	ApproveLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// RejectLeaveRequest requires a non-empty note; no balance effect.
	RejectLeaveRequest(ctx context.Context, requestID, note string) (LeaveRequestResponse, error)

	// CancelLeaveRequest restores the frozen effective days (if approved)
	// and deletes the request. Owner-only.
	CancelLeaveRequest(ctx context.Context, requestID, employeeID string) error

	// AnalyzeConflicts re-runs conflict analysis on demand for audit. Always
	// reflects current attendance; never cached.
	AnalyzeConflicts(ctx context.Context, requestID string) (ConflictAnalysisResponse, error)

	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	ListLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// GetBalances returns an employee's balances for a year.
	GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
}
