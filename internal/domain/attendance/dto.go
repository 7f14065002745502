package attendance

import (
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualEntryRequest is the HR path: explicit punches instead of "now".
type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`     // YYYY-MM-DD
	TimeIn     string  `json:"time_in"`  // 15:04 or 15:04:05
	TimeOut    *string `json:"time_out"` // optional, same formats
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.TimeIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in must be a valid clock time",
		})
	}

	if r.TimeOut != nil {
		if _, ok := validator.IsValidClockTime(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be a valid clock time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID      string  `json:"id"`
	TimeIn  *string `json:"time_in"`  // 15:04 or 15:04:05
	TimeOut *string `json:"time_out"` // 15:04 or 15:04:05
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.TimeIn == nil && r.TimeOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "at least one of time_in or time_out must be provided",
		})
	}

	if r.TimeIn != nil {
		if _, ok := validator.IsValidClockTime(*r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be a valid clock time",
			})
		}
	}

	if r.TimeOut != nil {
		if _, ok := validator.IsValidClockTime(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be a valid clock time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	TimeIn           *string `json:"time_in,omitempty"`
	TimeOut          *string `json:"time_out,omitempty"`
	Classification   string  `json:"classification"`
	IsComplete       bool    `json:"is_complete"`
	IsLate           bool    `json:"is_late"`
	IsEarlyOut       bool    `json:"is_early_out"`
	LateMinutes      int     `json:"late_minutes"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	WorkedMinutes    int     `json:"worked_minutes"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
}

type TardinessResponse struct {
	ID           string `json:"id"`
	AttendanceID string `json:"attendance_id"`
	Kind         string `json:"kind"`
	Minutes      int    `json:"minutes"`
	Description  string `json:"description"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
