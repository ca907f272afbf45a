package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	// The clock time should be between before and after
	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	// Should always return the fixed time
	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	newTime := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	clock.Set(newTime)

	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_AdvanceDays(t *testing.T) {
	clock := NewMockClockFromDate("2026-03-30")

	clock.AdvanceDays(5)

	// Calendar arithmetic, so month rollover is handled
	assert.Equal(t, "2026-04-04", Today(clock))
}

func TestNewMockClockFromDate(t *testing.T) {
	clock := NewMockClockFromDate("2026-03-01")

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), clock.Now())
	assert.Equal(t, "2026-03-01", Today(clock))
}

func TestNewMockClockFromDate_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromDate("not-a-date")
	})
}

func TestToday_UsesClock(t *testing.T) {
	// Collection jobs derive the query window start from the injected clock
	clock := NewMockClockFromDate("2026-12-31")
	assert.Equal(t, "2026-12-31", Today(clock))

	clock.AdvanceDays(1)
	assert.Equal(t, "2027-01-01", Today(clock))
}
