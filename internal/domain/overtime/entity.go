package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

// OvertimeRequest entity
type OvertimeRequest struct {
	ID         string
	EmployeeID string

	StartTime time.Time
	EndTime   time.Time

	Reason string

	// Hours is derived from the interval at submission, 2dp.
	Hours decimal.Decimal

	Status          OvertimeStatus
	RejectionReason *string
	ApprovedAt      *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

func (o OvertimeRequest) Duration() time.Duration {
	return o.EndTime.Sub(o.StartTime)
}

// Overlaps reports whether two requests' intervals intersect. Touching
// endpoints do not overlap: [10,12) then [12,14) is fine.
func (o OvertimeRequest) Overlaps(other OvertimeRequest) bool {
	return o.StartTime.Before(other.EndTime) && other.StartTime.Before(o.EndTime)
}

// HoursFromDuration converts an interval to decimal hours, 2dp.
func HoursFromDuration(d time.Duration) decimal.Decimal {
	return decimal.NewFromFloat(d.Minutes()).Div(decimal.NewFromInt(60)).Round(2)
}
