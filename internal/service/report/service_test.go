package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/overtime"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/report"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/repository/memory"
)

var manila = time.FixedZone("PST", 8*60*60)

type fixture struct {
	service        report.ReportService
	attendanceRepo *memory.AttendanceRepository
	balanceRepo    *memory.LeaveBalanceRepository
	overtimeRepo   *memory.OvertimeRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	balanceRepo := memory.NewLeaveBalanceRepository()
	overtimeRepo := memory.NewOvertimeRepository()
	employeeRepo := memory.NewEmployeeRepository()

	employeeRepo.Seed(employee.Employee{
		ID:               "emp-eligible",
		FullName:         "Maria Santos",
		OvertimeEligible: true,
		HourlyRate:       decimal.NewFromInt(200),
	})
	employeeRepo.Seed(employee.Employee{
		ID:               "emp-flat",
		FullName:         "Jose Reyes",
		OvertimeEligible: false,
		HourlyRate:       decimal.NewFromInt(180),
	})

	clk := clock.NewFixed(time.Date(2024, 7, 1, 9, 0, 0, 0, manila))

	return &fixture{
		service:        NewReportService(attendanceRepo, balanceRepo, overtimeRepo, employeeRepo, clk),
		attendanceRepo: attendanceRepo,
		balanceRepo:    balanceRepo,
		overtimeRepo:   overtimeRepo,
	}
}

// addDay writes a complete attendance record with derived minute fields, the
// way the attendance service would persist it.
func (f *fixture) addDay(t *testing.T, employeeID string, day time.Time, inHour, inMin, outHour, outMin int) {
	t.Helper()
	in := time.Date(day.Year(), day.Month(), day.Day(), inHour, inMin, 0, 0, manila)
	out := time.Date(day.Year(), day.Month(), day.Day(), outHour, outMin, 0, 0, manila)
	_, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID:       employeeID,
		Date:             day,
		TimeIn:           &in,
		TimeOut:          &out,
		LateMinutes:      attendance.LateMinutes(in),
		UndertimeMinutes: attendance.UndertimeMinutes(out),
		WorkedMinutes:    attendance.WorkedMinutes(in, out),
	})
	require.NoError(t, err)
}

func TestMonthlySummary_EligibleFormula(t *testing.T) {
	f := newFixture(t)

	// Jun 3: full 08:00-17:00 day, 480 payable minutes.
	// Jun 4: 08:30 arrival, 30 late minutes, 450 clipped payable minutes.
	f.addDay(t, "emp-eligible", time.Date(2024, 6, 3, 0, 0, 0, 0, manila), 8, 0, 17, 0)
	f.addDay(t, "emp-eligible", time.Date(2024, 6, 4, 0, 0, 0, 0, manila), 8, 30, 17, 0)

	summary, err := f.service.GetMonthlyAttendanceSummary(context.Background(), &report.MonthlySummaryRequest{
		EmployeeID: "emp-eligible", Year: 2024, Month: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DaysPresent)
	assert.Equal(t, 2, summary.DaysComplete)
	assert.Equal(t, 1, summary.DaysLate)
	assert.Equal(t, "0.50", summary.LateHours)
	// (480 + 450 - 30) / 60
	assert.Equal(t, "15.00", summary.PayableHours)
}

func TestMonthlySummary_FlatFormula(t *testing.T) {
	f := newFixture(t)

	// Same punches as the eligible case; the flat classification still gets
	// 8h per present day with no lateness deduction from pay.
	f.addDay(t, "emp-flat", time.Date(2024, 6, 3, 0, 0, 0, 0, manila), 8, 0, 17, 0)
	f.addDay(t, "emp-flat", time.Date(2024, 6, 4, 0, 0, 0, 0, manila), 8, 30, 17, 0)

	summary, err := f.service.GetMonthlyAttendanceSummary(context.Background(), &report.MonthlySummaryRequest{
		EmployeeID: "emp-flat", Year: 2024, Month: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.DaysLate, "lateness is still tracked")
	assert.Equal(t, "16.00", summary.PayableHours)
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	f := newFixture(t)

	summary, err := f.service.GetMonthlyAttendanceSummary(context.Background(), &report.MonthlySummaryRequest{
		EmployeeID: "emp-eligible", Year: 2024, Month: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.DaysPresent)
	assert.Equal(t, "0.00", summary.PayableHours)
}

func TestLeaveUtilization(t *testing.T) {
	f := newFixture(t)

	_, err := f.balanceRepo.Create(context.Background(), leave.LeaveBalance{
		EmployeeID:    "emp-eligible",
		LeaveTypeID:   "vacation",
		Year:          2024,
		TotalDays:     10,
		CarryOverDays: 2,
		UsedDays:      3,
	})
	require.NoError(t, err)

	rep, err := f.service.GetLeaveUtilization(context.Background(), "emp-eligible", 2024)
	require.NoError(t, err)

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 3.0, rep.Rows[0].UsedDays)
	assert.Equal(t, 9.0, rep.Rows[0].RemainingDays)
	assert.Equal(t, "0.25", rep.Rows[0].Utilization)
}

func TestOvertimeRanking(t *testing.T) {
	f := newFixture(t)

	seed := func(employeeID string, day, hours int) {
		start := time.Date(2024, 6, day, 18, 0, 0, 0, manila)
		_, err := f.overtimeRepo.Create(context.Background(), overtime.OvertimeRequest{
			EmployeeID: employeeID,
			StartTime:  start,
			EndTime:    start.Add(time.Duration(hours) * time.Hour),
			Hours:      decimal.NewFromInt(int64(hours)),
			Status:     overtime.OvertimeStatusApproved,
		})
		require.NoError(t, err)
	}

	seed("emp-eligible", 3, 2)
	seed("emp-eligible", 4, 3)
	seed("emp-flat", 5, 4)

	// Pending requests never rank.
	start := time.Date(2024, 6, 6, 18, 0, 0, 0, manila)
	_, err := f.overtimeRepo.Create(context.Background(), overtime.OvertimeRequest{
		EmployeeID: "emp-flat",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Hours:      decimal.NewFromInt(2),
		Status:     overtime.OvertimeStatusPending,
	})
	require.NoError(t, err)

	rep, err := f.service.GetOvertimeRanking(context.Background(), 2024, 6)
	require.NoError(t, err)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "emp-eligible", rep.Rows[0].EmployeeID)
	assert.Equal(t, "5.00", rep.Rows[0].TotalHours)
	assert.Equal(t, 2, rep.Rows[0].RequestCount)
	assert.Equal(t, "emp-flat", rep.Rows[1].EmployeeID)
	assert.Equal(t, "4.00", rep.Rows[1].TotalHours)
}
