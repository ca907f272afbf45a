// Package timeutil provides time abstractions and calendar-date helpers.
// Collection jobs and the store stamp rows with a Clock so tests can pin time;
// the date helpers keep all calendar arithmetic on parsed dates.
package timeutil

import (
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar date in YYYY-MM-DD form using the given
// clock. Collection jobs use it as the window start for upstream queries.
func Today(c Clock) string {
	return FormatDate(c.Now())
}

// MockClock returns a controllable time for testing.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromDate creates a mock clock pinned to midnight UTC of a
// YYYY-MM-DD calendar date. Panics on a malformed date (for use in tests only).
func NewMockClockFromDate(date string) *MockClock {
	t, err := ParseDate(date)
	if err != nil {
		panic("invalid date string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// AdvanceDays moves the mock clock forward by the given number of days.
func (m *MockClock) AdvanceDays(days int) {
	m.fixedTime = m.fixedTime.AddDate(0, 0, days)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
