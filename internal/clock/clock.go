// Package clock provides an abstraction for time operations to improve testability.
// Date parsing and report rendering take "today" from a Clock instead of calling
// time.Now() directly, so tests can pin the calendar to a fixed day.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Ensure both clocks implement Clock.
var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)

// Today returns midnight of the clock's current day in the clock's location.
func Today(c Clock) time.Time {
	return Midnight(c.Now())
}

// Midnight truncates t to the start of its calendar day, keeping its location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
