package employee

import "context"

// EmployeeRepository defines read access to the employment classification
// collaborator.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// IsOvertimeEligible reports whether the employee's classification
	// permits overtime requests and premium pay.
	IsOvertimeEligible(ctx context.Context, id string) (bool, error)

	List(ctx context.Context) ([]Employee, error)
}
