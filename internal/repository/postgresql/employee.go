package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `
		SELECT id, full_name, overtime_eligible, hourly_rate, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.OvertimeEligible, &emp.HourlyRate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// IsOvertimeEligible implements employee.EmployeeRepository.
func (e *employeeRepository) IsOvertimeEligible(ctx context.Context, id string) (bool, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `SELECT overtime_eligible FROM employees WHERE id = $1`

	var eligible bool
	err := q.QueryRow(ctx, query, id).Scan(&eligible)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, employee.ErrEmployeeNotFound
		}
		return false, fmt.Errorf("failed to get employee eligibility: %w", err)
	}

	return eligible, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `
		SELECT id, full_name, overtime_eligible, hourly_rate, created_at, updated_at
		FROM employees
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.OvertimeEligible, &emp.HourlyRate,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
