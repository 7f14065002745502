package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendancedomain "github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/repository/memory"
)

var manila = time.FixedZone("PST", 8*60*60)

type fixture struct {
	service        attendancedomain.AttendanceService
	attendanceRepo *memory.AttendanceRepository
	tardinessRepo  *memory.TardinessRepository
	clock          *clock.Fixed
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	tardinessRepo := memory.NewTardinessRepository()
	employeeRepo := memory.NewEmployeeRepository()
	employeeRepo.Seed(employee.Employee{
		ID:               "emp-1",
		FullName:         "Maria Santos",
		OvertimeEligible: true,
		HourlyRate:       decimal.NewFromInt(200),
	})

	clk := clock.NewFixed(now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:        NewAttendanceService(attendanceRepo, tardinessRepo, employeeRepo, clk, logger),
		attendanceRepo: attendanceRepo,
		tardinessRepo:  tardinessRepo,
		clock:          clk,
	}
}

func at(h, m, s int) time.Time {
	return time.Date(2024, 6, 3, h, m, s, 0, manila) // a Monday
}

func TestClockIn_Classification(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantClass   string
		wantLateMin int
	}{
		{"before start", at(7, 45, 0), "on_time", 0},
		{"at grace cutoff", at(8, 10, 0), "within_grace", 0},
		{"one second past cutoff", at(8, 10, 1), "late", 10},
		{"half hour late", at(8, 30, 0), "late", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)

			resp, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantClass, resp.Classification)
			assert.Equal(t, tt.wantLateMin, resp.LateMinutes)
			assert.Equal(t, "2024-06-03", resp.Date)
		})
	}
}

func TestClockIn_Duplicate(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendancedomain.ErrAlreadyClockedIn)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockIn_LateCreatesTardinessRecord(t *testing.T) {
	f := newFixture(t, at(8, 25, 0))

	resp, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	records, err := f.service.GetTardiness(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LATE", records[0].Kind)
	assert.Equal(t, 25, records[0].Minutes)
}

func TestClockOut(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	f.clock.T = at(16, 30, 0)
	resp, err := f.service.ClockOut(context.Background(), attendancedomain.ClockOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.True(t, resp.IsComplete)
	assert.True(t, resp.IsEarlyOut)
	assert.Equal(t, 30, resp.UndertimeMinutes)
	assert.Equal(t, 510, resp.WorkedMinutes)

	records, err := f.service.GetTardiness(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "UNDERTIME", records[0].Kind)
	assert.Equal(t, 30, records[0].Minutes)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	f := newFixture(t, at(17, 0, 0))

	_, err := f.service.ClockOut(context.Background(), attendancedomain.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendancedomain.ErrNotClockedIn)
}

func TestClockOut_Twice(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	f.clock.T = at(17, 0, 0)
	_, err = f.service.ClockOut(context.Background(), attendancedomain.ClockOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = f.service.ClockOut(context.Background(), attendancedomain.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendancedomain.ErrAlreadyClockedOut)
}

func TestCreateManual(t *testing.T) {
	f := newFixture(t, at(9, 0, 0))

	out := "17:00"
	resp, err := f.service.CreateManual(context.Background(), attendancedomain.ManualEntryRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-03",
		TimeIn:     "08:20",
		TimeOut:    &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "late", resp.Classification)
	assert.Equal(t, 20, resp.LateMinutes)
	assert.Equal(t, 0, resp.UndertimeMinutes)
	assert.True(t, resp.IsComplete)
}

func TestCreateManual_TimeOutBeforeTimeIn(t *testing.T) {
	f := newFixture(t, at(9, 0, 0))

	out := "08:00"
	_, err := f.service.CreateManual(context.Background(), attendancedomain.ManualEntryRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-03",
		TimeIn:     "09:00",
		TimeOut:    &out,
	})
	assert.ErrorIs(t, err, attendancedomain.ErrTimeOutBeforeTimeIn)
}

func TestCreateManual_DuplicateDate(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = f.service.CreateManual(context.Background(), attendancedomain.ManualEntryRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-03",
		TimeIn:     "08:00",
	})
	assert.ErrorIs(t, err, attendancedomain.ErrAttendanceExists)
}

func TestUpdateManual_RegeneratesTardiness(t *testing.T) {
	f := newFixture(t, at(8, 30, 0))

	created, err := f.service.ClockIn(context.Background(), attendancedomain.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	records, err := f.service.GetTardiness(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// HR corrects the punch to before the grace cutoff; the penalty must go.
	timeIn := "08:05"
	updated, err := f.service.UpdateManual(context.Background(), attendancedomain.UpdateAttendanceRequest{
		ID:     created.ID,
		TimeIn: &timeIn,
	})
	require.NoError(t, err)
	assert.Equal(t, "within_grace", updated.Classification)
	assert.Equal(t, 0, updated.LateMinutes)

	records, err = f.service.GetTardiness(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateManual_Validation(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	_, err := f.service.UpdateManual(context.Background(), attendancedomain.UpdateAttendanceRequest{ID: "x"})
	assert.Error(t, err)
}

func TestListAttendance_Pagination(t *testing.T) {
	f := newFixture(t, at(8, 0, 0))

	for day := 1; day <= 5; day++ {
		_, err := f.service.CreateManual(context.Background(), attendancedomain.ManualEntryRequest{
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 6, day, 0, 0, 0, 0, manila).Format("2006-01-02"),
			TimeIn:     "08:00",
		})
		require.NoError(t, err)
	}

	resp, err := f.service.ListAttendance(context.Background(), attendancedomain.AttendanceFilter{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Attendances, 2)
}
