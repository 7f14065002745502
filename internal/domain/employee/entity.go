package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee mirrors the classification collaborator's contract. This engine
// reads employees, it never writes them.
type Employee struct {
	ID               string
	FullName         string
	OvertimeEligible bool
	HourlyRate       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
