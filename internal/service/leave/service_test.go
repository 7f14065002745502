package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kronoshq/timekeeping-backend-go/internal/domain/attendance"
	"github.com/kronoshq/timekeeping-backend-go/internal/domain/employee"
	leavedomain "github.com/kronoshq/timekeeping-backend-go/internal/domain/leave"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/repository/memory"
)

var manila = time.FixedZone("PST", 8*60*60)

type fixture struct {
	service        leavedomain.LeaveService
	requestRepo    *memory.LeaveRequestRepository
	balanceRepo    *memory.LeaveBalanceRepository
	attendanceRepo *memory.AttendanceRepository
	clock          *clock.Fixed
}

// newFixture seeds one employee with a 10+2 day vacation balance for 2024.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	requestRepo := memory.NewLeaveRequestRepository()
	balanceRepo := memory.NewLeaveBalanceRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()

	employeeRepo.Seed(employee.Employee{
		ID:               "emp-1",
		FullName:         "Maria Santos",
		OvertimeEligible: true,
		HourlyRate:       decimal.NewFromInt(200),
	})

	_, err := balanceRepo.Create(context.Background(), leavedomain.LeaveBalance{
		EmployeeID:    "emp-1",
		LeaveTypeID:   "vacation",
		Year:          2024,
		TotalDays:     10,
		CarryOverDays: 2,
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2024, 6, 3, 9, 0, 0, 0, manila))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service: NewLeaveService(
			requestRepo, balanceRepo, attendanceRepo, employeeRepo,
			memory.NewTxManager(), clk, logger,
		),
		requestRepo:    requestRepo,
		balanceRepo:    balanceRepo,
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

func (f *fixture) submit(t *testing.T, start, end string) leavedomain.LeaveRequestResponse {
	t.Helper()
	resp, err := f.service.SubmitLeaveRequest(context.Background(), leavedomain.SubmitLeaveRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "vacation",
		StartDate:   start,
		EndDate:     end,
		Reason:      "family trip",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) remaining(t *testing.T) float64 {
	t.Helper()
	balance, err := f.balanceRepo.GetByEmployeeTypeYear(context.Background(), "emp-1", "vacation", 2024)
	require.NoError(t, err)
	return balance.Remaining()
}

// completeAttendance writes a full 08:00-17:00 record for the given day.
func (f *fixture) completeAttendance(t *testing.T, date string) {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", date, manila)
	require.NoError(t, err)
	in := day.Add(8 * time.Hour)
	out := day.Add(17 * time.Hour)
	_, err = f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       day,
		TimeIn:     &in,
		TimeOut:    &out,
	})
	require.NoError(t, err)
}

func TestSubmitLeaveRequest(t *testing.T) {
	f := newFixture(t)

	// Mon Jun 10 through Fri Jun 14: five working days.
	resp := f.submit(t, "2024-06-10", "2024-06-14")

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 5, resp.WorkingDays)
	assert.False(t, resp.HasAttendanceConflict)
	assert.Nil(t, resp.EffectiveDays)
	assert.Equal(t, 12.0, f.remaining(t), "submission must not deduct")
}

func TestSubmitLeaveRequest_WeekendOnly(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.SubmitLeaveRequest(context.Background(), leavedomain.SubmitLeaveRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "vacation",
		StartDate:   "2024-06-08",
		EndDate:     "2024-06-09",
		Reason:      "weekend",
	})
	assert.ErrorIs(t, err, leavedomain.ErrNoWorkingDays)
}

func TestSubmitLeaveRequest_InsufficientBalance(t *testing.T) {
	f := newFixture(t)

	// Three full weeks is 15 working days against a balance of 12.
	_, err := f.service.SubmitLeaveRequest(context.Background(), leavedomain.SubmitLeaveRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "vacation",
		StartDate:   "2024-06-10",
		EndDate:     "2024-06-28",
		Reason:      "long trip",
	})
	assert.ErrorIs(t, err, leavedomain.ErrInsufficientBalance)
}

func TestSubmitLeaveRequest_Overlap(t *testing.T) {
	f := newFixture(t)

	f.submit(t, "2024-06-10", "2024-06-12")

	_, err := f.service.SubmitLeaveRequest(context.Background(), leavedomain.SubmitLeaveRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "vacation",
		StartDate:   "2024-06-12",
		EndDate:     "2024-06-14",
		Reason:      "second trip",
	})
	assert.ErrorIs(t, err, leavedomain.ErrOverlappingLeave)
}

func TestSubmitLeaveRequest_ConflictFlagsButDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	f.completeAttendance(t, "2024-06-10")

	resp := f.submit(t, "2024-06-10", "2024-06-12")
	assert.True(t, resp.HasAttendanceConflict)
	assert.Equal(t, "pending", resp.Status)
}

func TestApproveLeaveRequest(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-14")

	approved, err := f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)

	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.EffectiveDays)
	assert.Equal(t, 5.0, *approved.EffectiveDays)
	assert.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, 7.0, f.remaining(t))
}

func TestApproveLeaveRequest_ConflictsShrinkDeduction(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-14")

	// Attendance recorded after submission still shrinks the deduction:
	// conflicts are recomputed at approval.
	f.completeAttendance(t, "2024-06-10")
	f.completeAttendance(t, "2024-06-11")

	approved, err := f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)

	require.NotNil(t, approved.EffectiveDays)
	assert.Equal(t, 3.0, *approved.EffectiveDays)
	assert.True(t, approved.HasAttendanceConflict)
	assert.Equal(t, 9.0, f.remaining(t))
}

func TestApproveLeaveRequest_Twice(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-11")

	_, err := f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	assert.ErrorIs(t, err, leavedomain.ErrLeaveAlreadyProcessed)
}

func TestRejectLeaveRequest(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-11")

	rejected, err := f.service.RejectLeaveRequest(context.Background(), resp.ID, "coverage gap that week")
	require.NoError(t, err)

	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "coverage gap that week", *rejected.RejectionReason)
	assert.Equal(t, 12.0, f.remaining(t))
}

func TestRejectLeaveRequest_NoteRequired(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-11")

	_, err := f.service.RejectLeaveRequest(context.Background(), resp.ID, "   ")
	assert.ErrorIs(t, err, leavedomain.ErrRejectionNoteRequired)
}

func TestCancelLeaveRequest_PendingDeletesWithoutBalanceEffect(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-11")

	err := f.service.CancelLeaveRequest(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err)

	_, err = f.service.GetLeaveRequest(context.Background(), resp.ID)
	assert.ErrorIs(t, err, leavedomain.ErrLeaveRequestNotFound)
	assert.Equal(t, 12.0, f.remaining(t))
}

func TestCancelLeaveRequest_ApprovedRestoresFrozenDays(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-14")
	f.completeAttendance(t, "2024-06-10")

	_, err := f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, f.remaining(t))

	// More attendance lands after approval. Cancellation must restore the
	// frozen 4 days, not a recomputed figure.
	f.completeAttendance(t, "2024-06-11")

	err = f.service.CancelLeaveRequest(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, f.remaining(t))
}

func TestCancelLeaveRequest_NotOwner(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-11")

	err := f.service.CancelLeaveRequest(context.Background(), resp.ID, "emp-2")
	assert.ErrorIs(t, err, leavedomain.ErrNotRequestOwner)
}

func TestCancelLeaveRequest_ApprovedAfterStart(t *testing.T) {
	f := newFixture(t)

	// Today is Jun 3; the range starts Jun 4.
	resp := f.submit(t, "2024-06-04", "2024-06-05")
	_, err := f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)

	f.clock.T = time.Date(2024, 6, 4, 9, 0, 0, 0, manila)
	err = f.service.CancelLeaveRequest(context.Background(), resp.ID, "emp-1")
	require.NoError(t, err, "cancellation on the start date itself is allowed")

	resp = f.submit(t, "2024-06-10", "2024-06-11")
	_, err = f.service.ApproveLeaveRequest(context.Background(), resp.ID)
	require.NoError(t, err)

	f.clock.T = time.Date(2024, 6, 11, 9, 0, 0, 0, manila)
	err = f.service.CancelLeaveRequest(context.Background(), resp.ID, "emp-1")
	assert.ErrorIs(t, err, leavedomain.ErrNotCancellable)
}

func TestAnalyzeConflicts(t *testing.T) {
	f := newFixture(t)

	resp := f.submit(t, "2024-06-10", "2024-06-14")
	f.completeAttendance(t, "2024-06-12")

	analysis, err := f.service.AnalyzeConflicts(context.Background(), resp.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, analysis.WorkingDays)
	assert.Equal(t, []string{"2024-06-12"}, analysis.ConflictDates)
	assert.Equal(t, 4.0, analysis.EffectiveDays)
}

func TestGetBalances(t *testing.T) {
	f := newFixture(t)

	balances, err := f.service.GetBalances(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 12.0, balances[0].RemainingDays)
}
