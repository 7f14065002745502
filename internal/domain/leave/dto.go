package leave

import (
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type SubmitLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Reason      string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	RequestID string `json:"request_id"`
	Note      string `json:"note"`
}

func (r *RejectLeaveRequest) Validate() error {
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

type LeaveRequestResponse struct {
	ID                    string   `json:"id"`
	EmployeeID            string   `json:"employee_id"`
	EmployeeName          *string  `json:"employee_name,omitempty"`
	LeaveTypeID           string   `json:"leave_type_id"`
	LeaveTypeName         *string  `json:"leave_type_name,omitempty"`
	StartDate             string   `json:"start_date"`
	EndDate               string   `json:"end_date"`
	WorkingDays           int      `json:"working_days"`
	Reason                string   `json:"reason"`
	Status                string   `json:"status"`
	HasAttendanceConflict bool     `json:"has_attendance_conflict"`
	EffectiveDays         *float64 `json:"effective_days,omitempty"`
	RejectionReason       *string  `json:"rejection_reason,omitempty"`
	SubmittedAt           string   `json:"submitted_at"`
	ApprovedAt            *string  `json:"approved_at,omitempty"`
}

type ConflictAnalysisResponse struct {
	RequestID     string   `json:"request_id"`
	WorkingDays   int      `json:"working_days"`
	ConflictDates []string `json:"conflict_dates"`
	EffectiveDays float64  `json:"effective_days"`
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	Year          int     `json:"year"`
	TotalDays     float64 `json:"total_days"`
	UsedDays      float64 `json:"used_days"`
	CarryOverDays float64 `json:"carry_over_days"`
	RemainingDays float64 `json:"remaining_days"`
}
