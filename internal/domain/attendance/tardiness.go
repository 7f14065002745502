package attendance

import "time"

// TardinessKind distinguishes the two penalty events derived from a record.
type TardinessKind string

const (
	TardinessLate      TardinessKind = "LATE"
	TardinessUndertime TardinessKind = "UNDERTIME"
)

// TardinessRecord is a penalty event owned by exactly one attendance record.
// The live set for an attendance always equals what its current flags imply;
// stale records are deleted before recreation, never patched.
type TardinessRecord struct {
	ID           string
	AttendanceID string
	Kind         TardinessKind
	Minutes      int
	Description  string
	CreatedAt    time.Time
}
