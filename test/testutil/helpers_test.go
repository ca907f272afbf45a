package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2025-12-15",
			wantYear:  2025,
			wantMonth: time.December,
			wantDay:   15,
		},
		{
			name:      "january date",
			dateStr:   "2025-01-01",
			wantYear:  2025,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestMustAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		days  int
		want  string
	}{
		{name: "same day", start: "2025-03-15", days: 0, want: "2025-03-15"},
		{name: "within month", start: "2025-03-15", days: 4, want: "2025-03-19"},
		{name: "month rollover", start: "2025-03-30", days: 3, want: "2025-04-02"},
		{name: "leap day", start: "2024-02-28", days: 1, want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustAddDays(t, tt.start, tt.days))
		})
	}
}

func TestFlightSeries(t *testing.T) {
	set := FlightSeries(t, "2025-03-15", 5, 500000, 480000, 520000)

	require.Len(t, set, 3)

	q, ok := set.Get("2025-03-15", 5)
	require.True(t, ok)
	assert.Equal(t, 500000, q.PricePerPerson)

	q, ok = set.Get("2025-03-17", 5)
	require.True(t, ok)
	assert.Equal(t, 520000, q.PricePerPerson)

	// Only the requested trip length is populated.
	_, ok = set.Get("2025-03-15", 3)
	assert.False(t, ok)
}

func TestHotelSeries(t *testing.T) {
	set := HotelSeries(t, "2025-03-15", 5, 3, 90000, 95000)

	require.Len(t, set, 2)

	q, ok := set.Get("2025-03-15", 5)
	require.True(t, ok)
	assert.Equal(t, 90000, q.PricePerNight)

	// The second quote lands one interval later.
	q, ok = set.Get("2025-03-18", 5)
	require.True(t, ok)
	assert.Equal(t, 95000, q.PricePerNight)
}

func TestMustCity(t *testing.T) {
	city := MustCity(t, "tokyo")
	assert.Equal(t, "NRT", city.AirportCode)
	assert.Equal(t, "Tokyo", city.NameEn)
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("hello")
		require.NotNil(t, strVal)
		assert.Equal(t, "hello", *strVal)
	})

	t.Run("bool value", func(t *testing.T) {
		boolVal := Ptr(true)
		require.NotNil(t, boolVal)
		assert.Equal(t, true, *boolVal)
	})
}
