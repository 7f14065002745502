package overtime

import "errors"

// Overtime domain errors. Submit validation short-circuits: the first
// failing check's error is the one surfaced.
var (
	ErrNotEligible              = errors.New("employee is not overtime-eligible")
	ErrInvalidInterval          = errors.New("overtime end must be after start")
	ErrPastDate                 = errors.New("overtime cannot be requested for a past date")
	ErrBelowMinimumDuration     = errors.New("overtime duration is below the 30 minute minimum")
	ErrExceedsDailyCap          = errors.New("overtime duration exceeds the 4 hour daily cap")
	ErrNoCompleteAttendance     = errors.New("no complete attendance record exists for the overtime date")
	ErrExceedsWeeklyCap         = errors.New("overtime would exceed the 20 hour weekly cap")
	ErrOverlappingOvertime      = errors.New("an overlapping overtime request already exists")
	ErrOvertimeNotFound         = errors.New("overtime request not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime request already processed")
	ErrRejectionNoteRequired    = errors.New("a rejection note is required")
)
