package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `id, employee_id, start_time, end_time, reason, hours,
	   status, rejection_reason, approved_at, submitted_at, created_at, updated_at`

func scanOvertime(row pgx.Row, req *overtime.OvertimeRequest) error {
	return row.Scan(
		&req.ID, &req.EmployeeID, &req.StartTime, &req.EndTime,
		&req.Reason, &req.Hours, &req.Status, &req.RejectionReason,
		&req.ApprovedAt, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
	)
}

// Create implements overtime.OvertimeRepository.
func (o *overtimeRepository) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, o.db)

	query := `
		INSERT INTO overtime_requests (
			employee_id, start_time, end_time, reason, hours, status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.StartTime, request.EndTime,
		request.Reason, request.Hours, request.Status, request.SubmittedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return request, nil
}

// GetByID implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE id = $1
	`

	var request overtime.OvertimeRequest
	err := scanOvertime(q.QueryRow(ctx, query, id), &request)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return request, nil
}

// GetByEmployeeID implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	return o.queryRequests(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_requests
		WHERE employee_id = $1
		ORDER BY start_time
	`, employeeID)
}

// GetActiveByEmployee implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	return o.queryRequests(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_requests
		WHERE employee_id = $1
		  AND status IN ('pending', 'approved')
		ORDER BY start_time
	`, employeeID)
}

// GetApprovedInRange implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetApprovedInRange(ctx context.Context, start, end time.Time) ([]overtime.OvertimeRequest, error) {
	return o.queryRequests(ctx, `
		SELECT `+overtimeColumns+`
		FROM overtime_requests
		WHERE status = 'approved'
		  AND start_time >= $1
		  AND start_time < $2
		ORDER BY start_time
	`, start, end)
}

func (o *overtimeRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, o.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var request overtime.OvertimeRequest
		if err := scanOvertime(rows, &request); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// Update implements overtime.OvertimeRepository.
func (o *overtimeRepository) Update(ctx context.Context, request overtime.OvertimeRequest) error {
	q := database.QuerierFrom(ctx, o.db)

	query := `
		UPDATE overtime_requests
		SET status = $2,
			rejection_reason = $3,
			approved_at = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.Status, request.RejectionReason, request.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}
