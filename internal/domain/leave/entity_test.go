package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBalanceDeductEnforcesInvariant(t *testing.T) {
	t.Parallel()
	b := LeaveBalance{TotalDays: 10, CarryOverDays: 2, UsedDays: 9}

	require.NoError(t, b.Deduct(3))
	assert.Equal(t, 12.0, b.UsedDays)
	assert.Equal(t, 0.0, b.Remaining())

	// Any further deduction would break used <= total + carryOver.
	err := b.Deduct(0.5)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 12.0, b.UsedDays, "failed deduction must not mutate")

	assert.ErrorIs(t, b.Deduct(-1), ErrInvalidDeduction)
}

func TestBalanceDeductZeroIsNoop(t *testing.T) {
	t.Parallel()
	b := LeaveBalance{TotalDays: 5, UsedDays: 5}
	require.NoError(t, b.Deduct(0))
	assert.Equal(t, 5.0, b.UsedDays)
}

func TestBalanceRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	b := LeaveBalance{TotalDays: 10, UsedDays: 4}

	require.NoError(t, b.Deduct(3))
	b.Restore(3)
	assert.Equal(t, 4.0, b.UsedDays)

	// Restore never drives used below zero.
	b.Restore(100)
	assert.Equal(t, 0.0, b.UsedDays)
}

func TestWorkingDayCountExcludesWeekends(t *testing.T) {
	t.Parallel()
	// Mon 2024-06-03 .. Sun 2024-06-09
	assert.Equal(t, 5, WorkingDayCount(day(2024, 6, 3), day(2024, 6, 9)))
	// Sat .. Sun only
	assert.Equal(t, 0, WorkingDayCount(day(2024, 6, 8), day(2024, 6, 9)))
	// Single Wednesday
	assert.Equal(t, 1, WorkingDayCount(day(2024, 6, 5), day(2024, 6, 5)))
	// Fri .. Mon spans a weekend
	assert.Equal(t, 2, WorkingDayCount(day(2024, 6, 7), day(2024, 6, 10)))
}

func TestRangesOverlapClosedIntervals(t *testing.T) {
	t.Parallel()
	a1, a2 := day(2024, 6, 3), day(2024, 6, 7)

	assert.True(t, RangesOverlap(a1, a2, day(2024, 6, 7), day(2024, 6, 10)), "shared endpoint overlaps")
	assert.True(t, RangesOverlap(a1, a2, day(2024, 6, 1), day(2024, 6, 30)), "containment overlaps")
	assert.False(t, RangesOverlap(a1, a2, day(2024, 6, 8), day(2024, 6, 10)))
	assert.False(t, RangesOverlap(day(2024, 6, 8), day(2024, 6, 10), a1, a2))
}

func TestCancellable(t *testing.T) {
	t.Parallel()
	today := day(2024, 6, 5)

	pending := LeaveRequest{Status: LeaveStatusPending, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 3)}
	assert.True(t, pending.Cancellable(today), "pending is always cancellable")

	future := LeaveRequest{Status: LeaveStatusApproved, StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12)}
	assert.True(t, future.Cancellable(today))

	startsToday := LeaveRequest{Status: LeaveStatusApproved, StartDate: today, EndDate: day(2024, 6, 7)}
	assert.True(t, startsToday.Cancellable(today))

	begun := LeaveRequest{Status: LeaveStatusApproved, StartDate: day(2024, 6, 3), EndDate: day(2024, 6, 7)}
	assert.False(t, begun.Cancellable(today))

	rejected := LeaveRequest{Status: LeaveStatusRejected, StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 12)}
	assert.False(t, rejected.Cancellable(today))
}

func TestCancellableWeekendStart(t *testing.T) {
	t.Parallel()

	// Range starts Saturday; its first working day is Monday Jun 10. With
	// today being that Monday, no working day is strictly in the past yet.
	weekendStart := LeaveRequest{Status: LeaveStatusApproved, StartDate: day(2024, 6, 8), EndDate: day(2024, 6, 11)}
	assert.True(t, weekendStart.Cancellable(day(2024, 6, 10)))
	assert.False(t, weekendStart.Cancellable(day(2024, 6, 11)), "first working day has passed")

	// A range with no working days at all stays cancellable.
	weekendOnly := LeaveRequest{Status: LeaveStatusApproved, StartDate: day(2024, 6, 8), EndDate: day(2024, 6, 9)}
	assert.True(t, weekendOnly.Cancellable(day(2024, 6, 12)))
}
