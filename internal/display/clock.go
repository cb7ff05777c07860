package display

import "time"

// Unit is the granularity of a boundary tick.
type Unit int

const (
	DayBoundary Unit = iota
	MinuteBoundary
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case DayBoundary:
		return "day"
	case MinuteBoundary:
		return "minute"
	default:
		return "unknown"
	}
}

// Clock is the wall-clock source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in Location, or local time when nil.
type SystemClock struct {
	Location *time.Location
}

// Now implements Clock.
func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.Location != nil {
		return now.In(c.Location)
	}
	return now.Local()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// NextBoundary returns the first instant strictly after now at which unit
// rolls over, in now's location.
func NextBoundary(now time.Time, unit Unit) time.Time {
	switch unit {
	case DayBoundary:
		y, m, d := now.Date()
		return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	default:
		return now.Truncate(time.Minute).Add(time.Minute)
	}
}
