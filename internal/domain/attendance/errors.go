package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyClockedIn  = errors.New("a time-in already exists for today")
	ErrNotClockedIn      = errors.New("no time-in exists for today")
	ErrAlreadyClockedOut = errors.New("a time-out already exists for today")

	// Manual entry errors
	ErrAttendanceExists    = errors.New("an attendance record already exists for this employee and date")
	ErrTimeOutBeforeTimeIn = errors.New("time-out must not be before time-in")

	// Tardiness errors
	ErrMissingAttendanceID = errors.New("attendance record has no identity yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
