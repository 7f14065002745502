package attendance

import (
	"time"
)

type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time // civil day, midnight in the employer's timezone
	TimeIn           *time.Time
	TimeOut          *time.Time
	LateMinutes      int
	UndertimeMinutes int
	WorkedMinutes    int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// Classification of a punch-in relative to the workday policy.
type Classification string

const (
	ClassificationOnTime      Classification = "on_time"
	ClassificationWithinGrace Classification = "within_grace"
	ClassificationLate        Classification = "late"
)

func (a Attendance) HasTimeIn() bool {
	return a.TimeIn != nil
}

func (a Attendance) HasTimeOut() bool {
	return a.TimeOut != nil
}

// IsComplete reports whether both punches are present. Only complete records
// count against leave requests and gate overtime submission.
func (a Attendance) IsComplete() bool {
	return a.TimeIn != nil && a.TimeOut != nil
}

// IsLate reports a punch-in strictly after the grace cutoff.
func (a Attendance) IsLate() bool {
	if a.TimeIn == nil {
		return false
	}
	return a.TimeIn.After(GraceCutoff(*a.TimeIn))
}

// IsWithinGrace reports a punch-in after the scheduled start but at or before
// the grace cutoff. No penalty applies.
func (a Attendance) IsWithinGrace() bool {
	if a.TimeIn == nil {
		return false
	}
	return a.TimeIn.After(WorkdayStart(*a.TimeIn)) && !a.TimeIn.After(GraceCutoff(*a.TimeIn))
}

// IsEarlyOut reports a punch-out before the scheduled end.
func (a Attendance) IsEarlyOut() bool {
	if a.TimeOut == nil {
		return false
	}
	return a.TimeOut.Before(WorkdayEnd(*a.TimeOut))
}

// ClockInClassification derives the punch-in status from the record's fields
// alone, independent of wall-clock now.
func (a Attendance) ClockInClassification() Classification {
	switch {
	case a.IsLate():
		return ClassificationLate
	case a.IsWithinGrace():
		return ClassificationWithinGrace
	default:
		return ClassificationOnTime
	}
}
