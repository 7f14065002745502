package report

import (
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

// Read projections over attendance, leave and overtime state. These are
// derived on demand, never stored.

type MonthlySummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyAttendanceSummary aggregates one employee's month. PayableHours
// follows the classification-dependent formula: flat 8h per present day for
// non-eligible staff, clipped lunch-deducted hours minus aggregate lateness
// for eligible staff.
type MonthlyAttendanceSummary struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	OvertimeEligible bool   `json:"overtime_eligible"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`

	DaysPresent   int `json:"days_present"`
	DaysComplete  int `json:"days_complete"`
	DaysLate      int `json:"days_late"`
	DaysUndertime int `json:"days_undertime"`

	WorkedHours    string `json:"worked_hours"`
	LateHours      string `json:"late_hours"`
	UndertimeHours string `json:"undertime_hours"`
	PayableHours   string `json:"payable_hours"`
}

type LeaveUtilizationRow struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	TotalDays     float64 `json:"total_days"`
	CarryOverDays float64 `json:"carry_over_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
	Utilization   string  `json:"utilization"` // used / (total + carryOver), 2dp
}

type LeaveUtilizationReport struct {
	EmployeeID string                `json:"employee_id"`
	Year       int                   `json:"year"`
	Rows       []LeaveUtilizationRow `json:"rows"`
}

type OvertimeRankingRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalHours   string `json:"total_hours"`
	RequestCount int    `json:"request_count"`
}

type OvertimeRankingReport struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Rows  []OvertimeRankingRow `json:"rows"`
}
