package leave

import (
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time // civil day, inclusive
	EndDate   time.Time // civil day, inclusive

	Reason string
	Status LeaveStatus

	// HasAttendanceConflict is set at submission for reviewer visibility.
	// Conflicts never block submission; they shrink the eventual deduction.
	HasAttendanceConflict bool

	// EffectiveDays is frozen at approval: the working days actually deducted
	// after subtracting attendance conflicts. Cancellation restores exactly
	// this amount, regardless of later attendance edits.
	EffectiveDays *float64

	RejectionReason *string
	ApprovedAt      *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName  *string
	LeaveTypeName *string
}

// Cancellable reports whether the request may still be cancelled by its
// owner: PENDING always, APPROVED only while no working day of the range is
// strictly before today. Weekend days at the head of the range never count
// as begun; only working days are deducted.
func (r LeaveRequest) Cancellable(today time.Time) bool {
	switch r.Status {
	case LeaveStatusPending:
		return true
	case LeaveStatusApproved:
		days := WorkingDays(r.StartDate, r.EndDate)
		if len(days) == 0 {
			return true
		}
		return !days[0].Before(today)
	default:
		return false
	}
}

// LeaveBalance is the owned aggregate for one (employee, leaveType, year).
// All mutation goes through Deduct and Restore so the invariant
// usedDays <= totalDays + carryOverDays holds at all times.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int

	TotalDays     float64
	UsedDays      float64
	CarryOverDays float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	LeaveTypeName *string
}

// Remaining returns total + carryOver - used.
func (b LeaveBalance) Remaining() float64 {
	return b.TotalDays + b.CarryOverDays - b.UsedDays
}

// Deduct consumes days from the balance. A deduction that would drive used
// above total + carryOver fails without mutating the balance. Deducting zero
// days is a no-op, not an error.
func (b *LeaveBalance) Deduct(days float64) error {
	if days < 0 {
		return ErrInvalidDeduction
	}
	if b.UsedDays+days > b.TotalDays+b.CarryOverDays {
		return ErrInsufficientBalance
	}
	b.UsedDays += days
	return nil
}

// Restore gives days back after a cancellation. Used never goes below zero.
func (b *LeaveBalance) Restore(days float64) {
	if days < 0 {
		return
	}
	b.UsedDays -= days
	if b.UsedDays < 0 {
		b.UsedDays = 0
	}
}

// WorkingDays lists the Monday-Friday days in the closed range [start, end].
func WorkingDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// WorkingDayCount counts Monday-Friday days in the closed range.
func WorkingDayCount(start, end time.Time) int {
	return len(WorkingDays(start, end))
}

// RangesOverlap reports whether two closed date ranges intersect.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
