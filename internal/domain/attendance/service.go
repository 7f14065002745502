package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records the first punch of the day and classifies it against
	// the grace policy.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut records the closing punch and derives undertime.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// CreateManual records an HR-initiated entry with explicit punches.
	CreateManual(ctx context.Context, req ManualEntryRequest) (AttendanceResponse, error)

	// UpdateManual edits an existing record (HR) and regenerates its
	// tardiness records.
	UpdateManual(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetTardiness returns the penalty events currently tied to a record.
	GetTardiness(ctx context.Context, attendanceID string) ([]TardinessResponse, error)
}
