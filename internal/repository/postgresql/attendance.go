package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, time_in, time_out,
	   late_minutes, undertime_minutes, worked_minutes, created_at, updated_at`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.LateMinutes, &att.UndertimeMinutes, &att.WorkedMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, time_in, time_out,
			late_minutes, undertime_minutes, worked_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.TimeIn,
		newAttendance.TimeOut,
		newAttendance.LateMinutes,
		newAttendance.UndertimeMinutes,
		newAttendance.WorkedMinutes,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE id = $1
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, id), &att)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// GetByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		UPDATE attendances
		SET time_in = $2,
			time_out = $3,
			late_minutes = $4,
			undertime_minutes = $5,
			worked_minutes = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.TimeIn, att.TimeOut,
		att.LateMinutes, att.UndertimeMinutes, att.WorkedMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := database.QuerierFrom(ctx, a.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM attendances a ` + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out,
			   a.late_minutes, a.undertime_minutes, a.worked_minutes,
			   a.created_at, a.updated_at,
			   e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.date DESC, a.employee_id
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.LateMinutes, &att.UndertimeMinutes, &att.WorkedMinutes,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}
