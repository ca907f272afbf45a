package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestQuote(t *testing.T) {
	tests := []struct {
		name    string
		series  map[string]int
		target  string
		want    int
		wantOK  bool
	}{
		{
			name:   "exact match wins over closer neighbors",
			series: map[string]int{"2026-03-04": 1, "2026-03-05": 2, "2026-03-06": 3},
			target: "2026-03-05",
			want:   2,
			wantOK: true,
		},
		{
			name:   "nearest by day distance",
			series: map[string]int{"2026-03-01": 10, "2026-03-10": 20},
			target: "2026-03-05",
			want:   10, // distance 4 beats distance 5
			wantOK: true,
		},
		{
			name:   "nearest across month boundary",
			series: map[string]int{"2026-02-27": 10, "2026-03-09": 20},
			target: "2026-03-03",
			want:   10, // 4 days back vs 6 days forward
			wantOK: true,
		},
		{
			name:   "equidistant tie goes to earlier date",
			series: map[string]int{"2026-03-03": 10, "2026-03-07": 20},
			target: "2026-03-05",
			want:   10,
			wantOK: true,
		},
		{
			name:   "single entry",
			series: map[string]int{"2026-01-01": 99},
			target: "2026-06-30",
			want:   99,
			wantOK: true,
		},
		{
			name:   "empty series",
			series: map[string]int{},
			target: "2026-03-05",
			wantOK: false,
		},
		{
			name:   "malformed target",
			series: map[string]int{"2026-03-01": 10},
			target: "not-a-date",
			wantOK: false,
		},
		{
			name:   "malformed keys skipped",
			series: map[string]int{"garbage": 1, "2026-03-10": 20},
			target: "2026-03-05",
			want:   20,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestQuote(tt.series, tt.target)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNearestQuote_Deterministic(t *testing.T) {
	// Ties must resolve the same way on every call, independent of map
	// iteration order.
	series := map[string]int{
		"2026-03-01": 1,
		"2026-03-09": 2,
	}

	first, ok := NearestQuote(series, "2026-03-05")
	require.True(t, ok)

	for i := 0; i < 50; i++ {
		got, ok := NearestQuote(series, "2026-03-05")
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
	assert.Equal(t, 1, first, "equidistant tie must pick the earlier date")
}
