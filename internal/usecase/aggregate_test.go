package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

func flightSet(quotes ...domain.FlightQuote) domain.FlightQuoteSet {
	set := make(domain.FlightQuoteSet)
	for _, q := range quotes {
		set.Add(q)
	}
	return set
}

func hotelSet(quotes ...domain.HotelQuote) domain.HotelQuoteSet {
	set := make(domain.HotelQuoteSet)
	for _, q := range quotes {
		set.Add(q)
	}
	return set
}

func TestAggregateTripCosts_ExactMatch(t *testing.T) {
	flights := flightSet(domain.FlightQuote{
		Date: "2026-03-01", TripLengthDays: 5, PricePerPerson: 500000,
		CarrierCode: "KE", CarrierName: "대한항공",
	})
	hotels := hotelSet(domain.HotelQuote{
		CheckInDate: "2026-03-01", TripLengthDays: 5, PricePerNight: 100000,
		PropertyName: "그랜드 호텔",
	})

	costs := AggregateTripCosts(flights, hotels, 5)
	require.Len(t, costs, 1)

	c := costs[0]
	assert.Equal(t, "2026-03-01", c.DepartureDate)
	assert.Equal(t, "2026-03-05", c.ReturnDate)
	assert.Equal(t, 500000, c.FlightPricePerPerson)
	assert.Equal(t, 100000, c.HotelPricePerNight)
	assert.Equal(t, 5, c.TripLengthDays)
	// 500000*2 + 100000*4
	assert.Equal(t, 1400000, c.TotalCostForGroup)
	assert.Equal(t, 700000, c.PerPersonCost)
	assert.True(t, c.HasDirectFlight)
	assert.Equal(t, "KE", c.CarrierCode)
	assert.Equal(t, "대한항공", c.CarrierName)
	assert.Equal(t, "그랜드 호텔", c.PropertyName)
}

func TestAggregateTripCosts_NearestHotelFallback(t *testing.T) {
	flights := flightSet(domain.FlightQuote{Date: "2026-03-05", TripLengthDays: 5, PricePerPerson: 400000})
	hotels := hotelSet(
		domain.HotelQuote{CheckInDate: "2026-03-01", TripLengthDays: 5, PricePerNight: 80000, PropertyName: "A"},
		domain.HotelQuote{CheckInDate: "2026-03-10", TripLengthDays: 5, PricePerNight: 90000, PropertyName: "B"},
	)

	costs := AggregateTripCosts(flights, hotels, 5)
	require.Len(t, costs, 1)

	// 2026-03-01 is 4 days away, 2026-03-10 is 5 days away
	assert.Equal(t, 80000, costs[0].HotelPricePerNight)
	assert.Equal(t, "A", costs[0].PropertyName)
}

func TestAggregateTripCosts_FallbackIgnoresOtherTripLengths(t *testing.T) {
	flights := flightSet(domain.FlightQuote{Date: "2026-03-05", TripLengthDays: 5, PricePerPerson: 400000})
	hotels := hotelSet(
		// Same date but wrong trip length; must not be used
		domain.HotelQuote{CheckInDate: "2026-03-05", TripLengthDays: 3, PricePerNight: 70000},
		domain.HotelQuote{CheckInDate: "2026-03-12", TripLengthDays: 5, PricePerNight: 95000},
	)

	costs := AggregateTripCosts(flights, hotels, 5)
	require.Len(t, costs, 1)
	assert.Equal(t, 95000, costs[0].HotelPricePerNight)
}

func TestAggregateTripCosts_NoHotelDataYieldsZero(t *testing.T) {
	flights := flightSet(domain.FlightQuote{Date: "2026-03-05", TripLengthDays: 5, PricePerPerson: 400000})
	hotels := hotelSet(domain.HotelQuote{CheckInDate: "2026-03-05", TripLengthDays: 3, PricePerNight: 70000})

	costs := AggregateTripCosts(flights, hotels, 5)
	require.Len(t, costs, 1)

	// Hotel price 0 is a known data-quality artifact, not filtered
	assert.Equal(t, 0, costs[0].HotelPricePerNight)
	assert.Equal(t, 800000, costs[0].TotalCostForGroup)
	assert.Equal(t, 400000, costs[0].PerPersonCost)
	assert.Empty(t, costs[0].PropertyName)
}

func TestAggregateTripCosts_SkipsDatesWithoutFlightForLength(t *testing.T) {
	flights := flightSet(
		domain.FlightQuote{Date: "2026-03-01", TripLengthDays: 5, PricePerPerson: 400000},
		domain.FlightQuote{Date: "2026-03-02", TripLengthDays: 3, PricePerPerson: 350000},
	)
	hotels := hotelSet(domain.HotelQuote{CheckInDate: "2026-03-01", TripLengthDays: 5, PricePerNight: 80000})

	costs := AggregateTripCosts(flights, hotels, 5)

	// Absence of a flight quote for the length means no trip cost for that date
	require.Len(t, costs, 1)
	assert.Equal(t, "2026-03-01", costs[0].DepartureDate)
}

func TestAggregateTripCosts_SortedByCalendarDate(t *testing.T) {
	flights := flightSet(
		domain.FlightQuote{Date: "2026-03-10", TripLengthDays: 5, PricePerPerson: 1},
		domain.FlightQuote{Date: "2026-02-27", TripLengthDays: 5, PricePerPerson: 2},
		domain.FlightQuote{Date: "2026-03-02", TripLengthDays: 5, PricePerPerson: 3},
		domain.FlightQuote{Date: "2025-12-31", TripLengthDays: 5, PricePerPerson: 4},
	)

	costs := AggregateTripCosts(flights, hotelSet(), 5)
	require.Len(t, costs, 4)

	want := []string{"2025-12-31", "2026-02-27", "2026-03-02", "2026-03-10"}
	for i, c := range costs {
		assert.Equal(t, want[i], c.DepartureDate)
	}
}

func TestAggregateTripCosts_ReturnDateSpansMonthEnd(t *testing.T) {
	flights := flightSet(domain.FlightQuote{Date: "2026-03-30", TripLengthDays: 4, PricePerPerson: 300000})

	costs := AggregateTripCosts(flights, hotelSet(), 4)
	require.Len(t, costs, 1)
	assert.Equal(t, "2026-04-02", costs[0].ReturnDate)
}

func TestAggregateTripCosts_PerPersonCostRoundsHalfUp(t *testing.T) {
	// 100000*2 + 33333*2 = 266666 total, 133333 per person (exact);
	// odd totals exercise the half-up path via roundDiv below.
	f := flightSet(domain.FlightQuote{Date: "2026-03-01", TripLengthDays: 3, PricePerPerson: 100000})
	h := hotelSet(domain.HotelQuote{CheckInDate: "2026-03-01", TripLengthDays: 3, PricePerNight: 33333})

	costs := AggregateTripCosts(f, h, 3)
	require.Len(t, costs, 1)
	assert.Equal(t, 100000*2+33333*2, costs[0].TotalCostForGroup)
	assert.Equal(t, 133333, costs[0].PerPersonCost)
}

func TestAggregateTripCosts_EmptyInputs(t *testing.T) {
	assert.Empty(t, AggregateTripCosts(flightSet(), hotelSet(), 5))
	assert.Empty(t, AggregateTripCosts(nil, nil, 5))
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{10, 2, 5},
		{11, 2, 6}, // half rounds up
		{233333, 2, 116667},
		{0, 2, 0},
		{7, 3, 2},
		{8, 3, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundDiv(tt.a, tt.b), "%d/%d", tt.a, tt.b)
	}
}
