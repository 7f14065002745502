package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrBalanceNotFound       = errors.New("leave balance not found")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrInvalidDeduction      = errors.New("deduction must not be negative")
	ErrOverlappingLeave      = errors.New("an overlapping leave request already exists")
	ErrNoWorkingDays         = errors.New("the requested range contains no working days")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrNotCancellable        = errors.New("leave request can no longer be cancelled")
	ErrNotRequestOwner       = errors.New("only the owning employee may cancel a leave request")
	ErrRejectionNoteRequired = errors.New("a rejection note is required")
)
