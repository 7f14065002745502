package postgresql

import (
	"context"
	"fmt"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
)

type tardinessRepository struct {
	db *database.DB
}

func NewTardinessRepository(db *database.DB) attendance.TardinessRepository {
	return &tardinessRepository{db: db}
}

// Create implements attendance.TardinessRepository.
func (t *tardinessRepository) Create(ctx context.Context, record attendance.TardinessRecord) (attendance.TardinessRecord, error) {
	if record.AttendanceID == "" {
		return attendance.TardinessRecord{}, attendance.ErrMissingAttendanceID
	}

	q := database.QuerierFrom(ctx, t.db)

	query := `
		INSERT INTO tardiness_records (attendance_id, kind, minutes, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.AttendanceID, record.Kind, record.Minutes, record.Description,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.TardinessRecord{}, fmt.Errorf("failed to create tardiness record: %w", err)
	}

	return record, nil
}

// GetByAttendanceID implements attendance.TardinessRepository.
func (t *tardinessRepository) GetByAttendanceID(ctx context.Context, attendanceID string) ([]attendance.TardinessRecord, error) {
	q := database.QuerierFrom(ctx, t.db)

	query := `
		SELECT id, attendance_id, kind, minutes, description, created_at
		FROM tardiness_records
		WHERE attendance_id = $1
		ORDER BY kind
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tardiness records: %w", err)
	}
	defer rows.Close()

	var records []attendance.TardinessRecord
	for rows.Next() {
		var record attendance.TardinessRecord
		err := rows.Scan(
			&record.ID, &record.AttendanceID, &record.Kind,
			&record.Minutes, &record.Description, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tardiness record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteByAttendanceID implements attendance.TardinessRepository.
func (t *tardinessRepository) DeleteByAttendanceID(ctx context.Context, attendanceID string) error {
	q := database.QuerierFrom(ctx, t.db)

	query := `DELETE FROM tardiness_records WHERE attendance_id = $1`

	if _, err := q.Exec(ctx, query, attendanceID); err != nil {
		return fmt.Errorf("failed to delete tardiness records: %w", err)
	}

	return nil
}
