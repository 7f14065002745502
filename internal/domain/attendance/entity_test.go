package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var manila = time.FixedZone("PST", 8*60*60)

func punch(h, m, s int) *time.Time {
	t := time.Date(2024, 6, 3, h, m, s, 0, manila) // a Monday
	return &t
}

func TestClockInClassificationBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		timeIn *time.Time
		want   Classification
	}{
		{"well before start", punch(7, 30, 0), ClassificationOnTime},
		{"last on-time second", punch(7, 59, 59), ClassificationOnTime},
		{"exactly at start", punch(8, 0, 0), ClassificationOnTime},
		{"one second into grace", punch(8, 0, 1), ClassificationWithinGrace},
		{"exactly at grace cutoff", punch(8, 10, 0), ClassificationWithinGrace},
		{"one second past cutoff", punch(8, 10, 1), ClassificationLate},
		{"mid morning", punch(9, 45, 0), ClassificationLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			att := Attendance{TimeIn: c.timeIn}
			assert.Equal(t, c.want, att.ClockInClassification())
		})
	}
}

func TestLateMinutesMeasuredFromStart(t *testing.T) {
	t.Parallel()
	// Lateness counts from 08:00, not from the grace cutoff.
	assert.Equal(t, 15, LateMinutes(*punch(8, 15, 0)))
	assert.Equal(t, 0, LateMinutes(*punch(8, 10, 0)))
	assert.Equal(t, 0, LateMinutes(*punch(7, 50, 0)))
}

func TestUndertime(t *testing.T) {
	t.Parallel()
	att := Attendance{TimeIn: punch(8, 0, 0), TimeOut: punch(16, 30, 0)}
	assert.True(t, att.IsEarlyOut())
	assert.Equal(t, 30, UndertimeMinutes(*att.TimeOut))

	onTime := Attendance{TimeIn: punch(8, 0, 0), TimeOut: punch(17, 0, 0)}
	assert.False(t, onTime.IsEarlyOut())
	assert.Equal(t, 0, UndertimeMinutes(*onTime.TimeOut))
}

func TestCompleteness(t *testing.T) {
	t.Parallel()
	assert.False(t, Attendance{}.IsComplete())
	assert.False(t, Attendance{TimeIn: punch(8, 0, 0)}.IsComplete())
	assert.True(t, Attendance{TimeIn: punch(8, 0, 0), TimeOut: punch(17, 0, 0)}.IsComplete())

	// hasTimeIn implies timeIn != nil by construction; predicates never panic
	// on nil punches.
	assert.False(t, Attendance{}.IsLate())
	assert.False(t, Attendance{}.IsWithinGrace())
	assert.False(t, Attendance{}.IsEarlyOut())
}

func TestPayableMinutesClipsAndDeductsLunch(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		in, out *time.Time
		want    int
	}{
		{"full standard day", punch(8, 0, 0), punch(17, 0, 0), 8 * 60},
		{"early in late out clipped", punch(7, 0, 0), punch(19, 0, 0), 8 * 60},
		{"morning only, no lunch overlap", punch(8, 0, 0), punch(12, 0, 0), 4 * 60},
		{"half lunch taken", punch(8, 0, 0), punch(12, 30, 0), 4 * 60},
		{"afternoon only", punch(13, 0, 0), punch(17, 0, 0), 4 * 60},
		{"out before in after clipping", punch(18, 0, 0), punch(19, 0, 0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, PayableMinutes(*c.in, *c.out))
		})
	}
}
