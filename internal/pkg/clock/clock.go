package clock

import (
	"fmt"
	"time"
)

// Clock supplies "now" and "today" in the employer's fixed civil timezone.
// Every service takes a Clock so classification is deterministic under test.
type Clock interface {
	Now() time.Time
	Today() time.Time
	Location() *time.Location
}

// CivilClock is the production clock, pinned to one IANA zone.
type CivilClock struct {
	loc *time.Location
}

func NewCivilClock(timezone string) (*CivilClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &CivilClock{loc: loc}, nil
}

func (c *CivilClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today returns midnight of the current civil day.
func (c *CivilClock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

func (c *CivilClock) Location() *time.Location {
	return c.loc
}

// Fixed is a test clock frozen at a single instant.
type Fixed struct {
	T time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Today() time.Time {
	return time.Date(f.T.Year(), f.T.Month(), f.T.Day(), 0, 0, 0, 0, f.T.Location())
}

func (f *Fixed) Location() *time.Location {
	return f.T.Location()
}
