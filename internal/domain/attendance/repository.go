package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The (employee, date) pair is unique; Create must not produce a second row
// for the same day.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific civil day. Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByDateRange retrieves an employee's records with date in [start, end].
	GetByDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}

// TardinessRepository owns the penalty events derived from attendance.
type TardinessRepository interface {
	Create(ctx context.Context, record TardinessRecord) (TardinessRecord, error)

	GetByAttendanceID(ctx context.Context, attendanceID string) ([]TardinessRecord, error)

	// DeleteByAttendanceID removes every record tied to the attendance.
	// Regeneration is delete-then-recreate, so this must be idempotent.
	DeleteByAttendanceID(ctx context.Context, attendanceID string) error
}
