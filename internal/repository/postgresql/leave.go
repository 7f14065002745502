package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `id, employee_id, leave_type_id, start_date, end_date,
	   reason, status, has_attendance_conflict, effective_days,
	   rejection_reason, approved_at, submitted_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row, req *leave.LeaveRequest) error {
	return row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.HasAttendanceConflict, &req.EffectiveDays,
		&req.RejectionReason, &req.ApprovedAt, &req.SubmittedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type_id, start_date, end_date, reason,
			status, has_attendance_conflict, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.Reason,
		request.Status, request.HasAttendanceConflict, request.SubmittedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE id = $1
	`

	var request leave.LeaveRequest
	err := scanLeaveRequest(q.QueryRow(ctx, query, id), &request)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return l.queryRequests(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY start_date
	`, employeeID)
}

// GetActiveByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return l.queryRequests(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('pending', 'approved')
		ORDER BY start_date
	`, employeeID)
}

func (l *leaveRequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, l.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		if err := scanLeaveRequest(rows, &request); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			has_attendance_conflict = $3,
			effective_days = $4,
			rejection_reason = $5,
			approved_at = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.Status, request.HasAttendanceConflict,
		request.EffectiveDays, request.RejectionReason, request.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		INSERT INTO leave_balances (
			employee_id, leave_type_id, year, total_days, used_days, carry_over_days
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.LeaveTypeID, balance.Year,
		balance.TotalDays, balance.UsedDays, balance.CarryOverDays,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)

	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return balance, nil
}

// GetByEmployeeTypeYear implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.total_days, b.used_days, b.carry_over_days,
			   b.created_at, b.updated_at,
			   t.name
		FROM leave_balances b
		JOIN leave_types t ON t.id = b.leave_type_id
		WHERE b.employee_id = $1
		  AND b.leave_type_id = $2
		  AND b.year = $3
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.Year,
		&balance.TotalDays, &balance.UsedDays, &balance.CarryOverDays,
		&balance.CreatedAt, &balance.UpdatedAt,
		&balance.LeaveTypeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance, nil
}

// GetByEmployeeAndYear implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.total_days, b.used_days, b.carry_over_days,
			   b.created_at, b.updated_at,
			   t.name
		FROM leave_balances b
		JOIN leave_types t ON t.id = b.leave_type_id
		WHERE b.employee_id = $1
		  AND b.year = $2
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var balance leave.LeaveBalance
		err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.Year,
			&balance.TotalDays, &balance.UsedDays, &balance.CarryOverDays,
			&balance.CreatedAt, &balance.UpdatedAt,
			&balance.LeaveTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, balance)
	}

	return balances, rows.Err()
}

// Update implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Update(ctx context.Context, balance leave.LeaveBalance) error {
	q := database.QuerierFrom(ctx, l.db)

	query := `
		UPDATE leave_balances
		SET total_days = $2,
			used_days = $3,
			carry_over_days = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		balance.ID, balance.TotalDays, balance.UsedDays, balance.CarryOverDays,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}
