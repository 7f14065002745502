package attendance

import "time"

// Workday policy constants, all in the employer's civil timezone.
const (
	WorkdayStartHour = 8

	GraceCutoffHour   = 8
	GraceCutoffMinute = 10

	WorkdayEndHour = 17

	LunchStartHour = 12
	LunchEndHour   = 13

	// StandardDailyMinutes is the flat credit for staff whose classification
	// is not overtime-eligible.
	StandardDailyMinutes = 8 * 60
)

// WorkdayStart returns 08:00 of the given civil day.
func WorkdayStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), WorkdayStartHour, 0, 0, 0, day.Location())
}

// GraceCutoff returns 08:10 of the given civil day. Arrivals at or before the
// cutoff are not penalized.
func GraceCutoff(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), GraceCutoffHour, GraceCutoffMinute, 0, 0, day.Location())
}

// WorkdayEnd returns 17:00 of the given civil day.
func WorkdayEnd(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), WorkdayEndHour, 0, 0, 0, day.Location())
}

// LateMinutes measures lateness from the scheduled start, not from the grace
// cutoff. Zero when the arrival is within grace.
func LateMinutes(timeIn time.Time) int {
	if !timeIn.After(GraceCutoff(timeIn)) {
		return 0
	}
	diff := timeIn.Sub(WorkdayStart(timeIn)).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(diff)
}

// UndertimeMinutes measures an early departure against the scheduled end.
func UndertimeMinutes(timeOut time.Time) int {
	end := WorkdayEnd(timeOut)
	if !timeOut.Before(end) {
		return 0
	}
	return int(end.Sub(timeOut).Minutes())
}

// WorkedMinutes is the raw punch-to-punch duration.
func WorkedMinutes(timeIn, timeOut time.Time) int {
	d := timeOut.Sub(timeIn).Minutes()
	if d < 0 {
		return 0
	}
	return int(d)
}

// PayableMinutes clips the punches to the scheduled workday and deducts the
// overlap with the lunch hour. This is the formula for overtime-eligible
// staff; non-eligible staff are credited StandardDailyMinutes instead.
func PayableMinutes(timeIn, timeOut time.Time) int {
	start := WorkdayStart(timeIn)
	end := WorkdayEnd(timeIn)

	in := timeIn
	if in.Before(start) {
		in = start
	}
	out := timeOut
	if out.After(end) {
		out = end
	}
	if !out.After(in) {
		return 0
	}

	minutes := int(out.Sub(in).Minutes())

	lunchStart := time.Date(timeIn.Year(), timeIn.Month(), timeIn.Day(), LunchStartHour, 0, 0, 0, timeIn.Location())
	lunchEnd := time.Date(timeIn.Year(), timeIn.Month(), timeIn.Day(), LunchEndHour, 0, 0, 0, timeIn.Location())

	overlapStart := in
	if lunchStart.After(overlapStart) {
		overlapStart = lunchStart
	}
	overlapEnd := out
	if lunchEnd.Before(overlapEnd) {
		overlapEnd = lunchEnd
	}
	if overlapEnd.After(overlapStart) {
		minutes -= int(overlapEnd.Sub(overlapStart).Minutes())
	}

	return minutes
}
