package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightQuoteSet_AddAndGet(t *testing.T) {
	set := make(FlightQuoteSet)

	set.Add(FlightQuote{Date: "2026-03-01", TripLengthDays: 5, PricePerPerson: 500000, CarrierCode: "KE"})
	set.Add(FlightQuote{Date: "2026-03-01", TripLengthDays: 3, PricePerPerson: 450000})
	set.Add(FlightQuote{Date: "2026-03-02", TripLengthDays: 5, PricePerPerson: 520000})

	q, ok := set.Get("2026-03-01", 5)
	require.True(t, ok)
	assert.Equal(t, 500000, q.PricePerPerson)
	assert.Equal(t, "KE", q.CarrierCode)

	// Trip length is an independent axis per date
	q, ok = set.Get("2026-03-01", 3)
	require.True(t, ok)
	assert.Equal(t, 450000, q.PricePerPerson)

	_, ok = set.Get("2026-03-01", 7)
	assert.False(t, ok)

	_, ok = set.Get("2026-03-09", 5)
	assert.False(t, ok)
}

func TestFlightQuoteSet_AddReplacesExistingKey(t *testing.T) {
	set := make(FlightQuoteSet)

	set.Add(FlightQuote{Date: "2026-03-01", TripLengthDays: 5, PricePerPerson: 500000})
	set.Add(FlightQuote{Date: "2026-03-01", TripLengthDays: 5, PricePerPerson: 480000})

	q, ok := set.Get("2026-03-01", 5)
	require.True(t, ok)
	assert.Equal(t, 480000, q.PricePerPerson)
}

func TestHotelQuoteSet_ForTripLength(t *testing.T) {
	tests := []struct {
		name       string
		quotes     []HotelQuote
		tripLength int
		wantDates  []string
	}{
		{
			name: "only matching trip length selected",
			quotes: []HotelQuote{
				{CheckInDate: "2026-03-01", TripLengthDays: 5, PricePerNight: 100000},
				{CheckInDate: "2026-03-01", TripLengthDays: 3, PricePerNight: 110000},
				{CheckInDate: "2026-03-10", TripLengthDays: 5, PricePerNight: 90000},
				{CheckInDate: "2026-03-13", TripLengthDays: 7, PricePerNight: 95000},
			},
			tripLength: 5,
			wantDates:  []string{"2026-03-01", "2026-03-10"},
		},
		{
			name: "no quotes for trip length yields empty map",
			quotes: []HotelQuote{
				{CheckInDate: "2026-03-01", TripLengthDays: 3, PricePerNight: 110000},
			},
			tripLength: 6,
			wantDates:  nil,
		},
		{
			name:       "empty set yields empty map",
			quotes:     nil,
			tripLength: 5,
			wantDates:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(HotelQuoteSet)
			for _, q := range tt.quotes {
				set.Add(q)
			}

			got := set.ForTripLength(tt.tripLength)

			assert.Len(t, got, len(tt.wantDates))
			for _, date := range tt.wantDates {
				q, ok := got[date]
				require.True(t, ok, "missing date %s", date)
				assert.Equal(t, tt.tripLength, q.TripLengthDays)
			}
		})
	}
}

func TestValidTripLength(t *testing.T) {
	tests := []struct {
		length int
		want   bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{7, true},
		{8, false},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTripLength(tt.length), "length %d", tt.length)
	}
}
