package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/report"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

var sixty = decimal.NewFromInt(60)

type reportService struct {
	attendanceRepo attendance.AttendanceRepository
	balanceRepo    leave.LeaveBalanceRepository
	overtimeRepo   overtime.OvertimeRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	balanceRepo leave.LeaveBalanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) report.ReportService {
	return &reportService{
		attendanceRepo: attendanceRepo,
		balanceRepo:    balanceRepo,
		overtimeRepo:   overtimeRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

func (s *reportService) GetMonthlyAttendanceSummary(ctx context.Context, req *report.MonthlySummaryRequest) (*report.MonthlyAttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.clock.Location())
	end := start.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.GetByDateRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	summary := &report.MonthlyAttendanceSummary{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		OvertimeEligible: emp.OvertimeEligible,
		Year:             req.Year,
		Month:            req.Month,
	}

	var workedMin, lateMin, undertimeMin, payableMin int
	for _, record := range records {
		if !record.HasTimeIn() {
			continue
		}
		summary.DaysPresent++
		if record.IsComplete() {
			summary.DaysComplete++
		}
		if record.LateMinutes > 0 {
			summary.DaysLate++
		}
		if record.UndertimeMinutes > 0 {
			summary.DaysUndertime++
		}
		workedMin += record.WorkedMinutes
		lateMin += record.LateMinutes
		undertimeMin += record.UndertimeMinutes

		if emp.OvertimeEligible && record.IsComplete() {
			payableMin += attendance.PayableMinutes(*record.TimeIn, *record.TimeOut)
		}
	}

	// Classification drives the payable formula. Non-eligible staff are
	// credited a flat day per presence; eligible staff get clipped
	// lunch-deducted hours with lateness deducted once at the monthly level.
	if emp.OvertimeEligible {
		payableMin -= lateMin
		if payableMin < 0 {
			payableMin = 0
		}
	} else {
		payableMin = summary.DaysPresent * attendance.StandardDailyMinutes
	}

	summary.WorkedHours = minutesToHours(workedMin)
	summary.LateHours = minutesToHours(lateMin)
	summary.UndertimeHours = minutesToHours(undertimeMin)
	summary.PayableHours = minutesToHours(payableMin)

	return summary, nil
}

func (s *reportService) GetLeaveUtilization(ctx context.Context, employeeID string, year int) (*report.LeaveUtilizationReport, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	if !validator.IsValidYear(year) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	balances, err := s.balanceRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	rows := make([]report.LeaveUtilizationRow, 0, len(balances))
	for _, balance := range balances {
		utilization := "0.00"
		if entitled := balance.TotalDays + balance.CarryOverDays; entitled > 0 {
			utilization = decimal.NewFromFloat(balance.UsedDays).
				Div(decimal.NewFromFloat(entitled)).
				Round(2).StringFixed(2)
		}
		rows = append(rows, report.LeaveUtilizationRow{
			LeaveTypeID:   balance.LeaveTypeID,
			LeaveTypeName: balance.LeaveTypeName,
			TotalDays:     balance.TotalDays,
			CarryOverDays: balance.CarryOverDays,
			UsedDays:      balance.UsedDays,
			RemainingDays: balance.Remaining(),
			Utilization:   utilization,
		})
	}

	return &report.LeaveUtilizationReport{
		EmployeeID: employeeID,
		Year:       year,
		Rows:       rows,
	}, nil
}

func (s *reportService) GetOvertimeRanking(ctx context.Context, year, month int) (*report.OvertimeRankingReport, error) {
	if !validator.IsValidYear(year) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.clock.Location())
	end := start.AddDate(0, 1, 0)

	approved, err := s.overtimeRepo.GetApprovedInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved overtime: %w", err)
	}

	type agg struct {
		hours decimal.Decimal
		count int
	}
	totals := make(map[string]*agg)
	for _, request := range approved {
		a, ok := totals[request.EmployeeID]
		if !ok {
			a = &agg{hours: decimal.Zero}
			totals[request.EmployeeID] = a
		}
		a.hours = a.hours.Add(request.Hours)
		a.count++
	}

	rows := make([]report.OvertimeRankingRow, 0, len(totals))
	for employeeID, a := range totals {
		name := employeeID
		if emp, err := s.employeeRepo.GetByID(ctx, employeeID); err == nil {
			name = emp.FullName
		}
		rows = append(rows, report.OvertimeRankingRow{
			EmployeeID:   employeeID,
			EmployeeName: name,
			TotalHours:   a.hours.StringFixed(2),
			RequestCount: a.count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalHours != rows[j].TotalHours {
			hi, _ := decimal.NewFromString(rows[i].TotalHours)
			hj, _ := decimal.NewFromString(rows[j].TotalHours)
			return hi.GreaterThan(hj)
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return &report.OvertimeRankingReport{
		Year:  year,
		Month: month,
		Rows:  rows,
	}, nil
}

func minutesToHours(minutes int) string {
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2).StringFixed(2)
}
