package overtime

import (
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

// ========================================
// OVERTIME DTOs
// ========================================

type SubmitOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	StartTime  string `json:"start_time"` // RFC3339
	EndTime    string `json:"end_time"`   // RFC3339
	Reason     string `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}

	if _, ok := validator.IsValidDateTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectOvertimeRequest struct {
	RequestID string `json:"request_id"`
	Note      string `json:"note"`
}

func (r *RejectOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OvertimeResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Hours           string  `json:"hours"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
}

// OvertimeApprovalResponse carries the premium pay computed at approval
// time. Downstream payroll recomputes it independently.
type OvertimeApprovalResponse struct {
	OvertimeResponse
	Multiplier string `json:"multiplier"`
	PremiumPay string `json:"premium_pay"`
}
