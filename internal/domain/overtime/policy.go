package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overtime policy constants.
const (
	MinDurationMinutes = 30
	MaxDailyHours      = 4
	MaxWeeklyHours     = 20

	NightStartHour = 22
	NightEndHour   = 6
)

var (
	// BaseMultiplier applies to all eligible overtime.
	BaseMultiplier = decimal.NewFromFloat(1.25)

	// Surcharge deltas are ADDED onto the base multiplier, not compounded.
	// A weekend night shift pays 1.25 + 0.10 + 0.30 = 1.65x.
	NightDelta   = decimal.NewFromFloat(0.10)
	WeekendDelta = decimal.NewFromFloat(0.30)
)

// IsNightShift reports whether the start falls in the night window
// (hour >= 22 or < 6).
func IsNightShift(start time.Time) bool {
	h := start.Hour()
	return h >= NightStartHour || h < NightEndHour
}

// IsWeekend reports whether the start falls on Saturday or Sunday.
func IsWeekend(start time.Time) bool {
	wd := start.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// PremiumMultiplier layers the applicable surcharge deltas onto the base.
func PremiumMultiplier(start time.Time) decimal.Decimal {
	m := BaseMultiplier
	if IsNightShift(start) {
		m = m.Add(NightDelta)
	}
	if IsWeekend(start) {
		m = m.Add(WeekendDelta)
	}
	return m
}

// PremiumPay computes hours x hourlyRate x multiplier, rounded to 2 decimal
// places half-up.
func PremiumPay(hours, hourlyRate decimal.Decimal, start time.Time) decimal.Decimal {
	return hours.Mul(hourlyRate).Mul(PremiumMultiplier(start)).Round(2)
}
