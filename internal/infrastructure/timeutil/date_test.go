package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		days    int
		want    string
		wantErr bool
	}{
		{name: "within month", date: "2026-03-01", days: 4, want: "2026-03-05"},
		{name: "month rollover", date: "2026-03-30", days: 4, want: "2026-04-03"},
		{name: "year rollover", date: "2026-12-30", days: 4, want: "2027-01-03"},
		{name: "leap day", date: "2028-02-28", days: 1, want: "2028-02-29"},
		{name: "zero days", date: "2026-03-01", days: 0, want: "2026-03-01"},
		{name: "negative days", date: "2026-03-05", days: -4, want: "2026-03-01"},
		{name: "malformed date", date: "03/01/2026", days: 1, wantErr: true},
		{name: "unpadded date", date: "2026-3-1", days: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.days)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    int
		wantErr bool
	}{
		{name: "same date", a: "2026-03-05", b: "2026-03-05", want: 0},
		{name: "forward", a: "2026-03-05", b: "2026-03-01", want: 4},
		{name: "backward is symmetric", a: "2026-03-01", b: "2026-03-05", want: 4},
		{name: "across months", a: "2026-02-27", b: "2026-03-02", want: 3},
		{name: "malformed left", a: "bad", b: "2026-03-02", wantErr: true},
		{name: "malformed right", a: "2026-03-02", b: "bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayDistance(tt.a, tt.b)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_RejectsLocaleFormats(t *testing.T) {
	for _, bad := range []string{"2026/03/01", "01-03-2026", "2026-13-01", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "date %q", bad)
	}
}
