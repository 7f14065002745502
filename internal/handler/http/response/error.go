package response

import (
	"errors"
	"net/http"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Sentinels become 4xx;
// anything unrecognized is a wrapped collaborator failure and stays a 500
// the caller may safely retry.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "A time-in already exists for today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "A time-out already exists for today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No time-in exists for today", nil)
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "An attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrTimeOutBeforeTimeIn):
		BadRequest(w, "Time-out must not be before time-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrNoWorkingDays):
		BadRequest(w, "The requested range contains no working days", nil)
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Leave request can no longer be cancelled")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the owning employee may cancel this leave request")
	case errors.Is(err, leave.ErrRejectionNoteRequired):
		BadRequest(w, "A rejection note is required", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrNotEligible):
		Forbidden(w, "Employee is not overtime-eligible")
	case errors.Is(err, overtime.ErrInvalidInterval):
		BadRequest(w, "Overtime end must be after start", nil)
	case errors.Is(err, overtime.ErrPastDate):
		BadRequest(w, "Overtime cannot be requested for a past date", nil)
	case errors.Is(err, overtime.ErrBelowMinimumDuration):
		BadRequest(w, "Overtime duration is below the 30 minute minimum", nil)
	case errors.Is(err, overtime.ErrExceedsDailyCap):
		BadRequest(w, "Overtime duration exceeds the 4 hour daily cap", nil)
	case errors.Is(err, overtime.ErrNoCompleteAttendance):
		BadRequest(w, "No complete attendance record exists for the overtime date", nil)
	case errors.Is(err, overtime.ErrExceedsWeeklyCap):
		BadRequest(w, "Overtime would exceed the 20 hour weekly cap", nil)
	case errors.Is(err, overtime.ErrOverlappingOvertime):
		Conflict(w, "An overlapping overtime request already exists")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrRejectionNoteRequired):
		BadRequest(w, "A rejection note is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
