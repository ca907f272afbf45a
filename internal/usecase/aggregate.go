package usecase

import (
	"sort"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

// AggregateTripCosts joins a city's flight and hotel quote series into one
// trip cost per flight-quoted departure date, for a single trip length.
//
// The hotel price for a date is resolved in three steps:
//  1. exact quote for the same date and trip length,
//  2. nearest-date quote among hotel entries carrying the same trip length,
//  3. zero when no hotel entry exists anywhere for the trip length.
//
// The zero fallback produces a lower-than-real estimate. That is a known
// data-sparsity artifact, surfaced as-is rather than filtered out.
//
// Output is sorted ascending by calendar departure date. Sorting compares
// parsed dates, never locale string order.
func AggregateTripCosts(flights domain.FlightQuoteSet, hotels domain.HotelQuoteSet, tripLength int) []domain.TripCost {
	nights := tripLength - 1
	hotelsForLength := hotels.ForTripLength(tripLength)

	costs := make([]domain.TripCost, 0, len(flights))
	departures := make(map[string]int64, len(flights))

	for date, byLength := range flights {
		flight, ok := byLength[tripLength]
		if !ok {
			continue
		}

		departure, err := timeutil.ParseDate(date)
		if err != nil {
			// Structurally malformed row; validation upstream should have
			// caught it, so skip rather than poison the series.
			continue
		}
		returnDate := timeutil.FormatDate(departure.AddDate(0, 0, nights))

		var hotelPrice int
		var propertyName string
		if hotel, ok := hotelsForLength[date]; ok {
			hotelPrice = hotel.PricePerNight
			propertyName = hotel.PropertyName
		} else if hotel, ok := NearestQuote(hotelsForLength, date); ok {
			hotelPrice = hotel.PricePerNight
			propertyName = hotel.PropertyName
		}

		total := flight.PricePerPerson*domain.GroupSize + hotelPrice*nights

		costs = append(costs, domain.TripCost{
			DepartureDate:        date,
			ReturnDate:           returnDate,
			FlightPricePerPerson: flight.PricePerPerson,
			HotelPricePerNight:   hotelPrice,
			TripLengthDays:       tripLength,
			TotalCostForGroup:    total,
			PerPersonCost:        roundDiv(total, domain.GroupSize),
			HasDirectFlight:      true,
			CarrierCode:          flight.CarrierCode,
			CarrierName:          flight.CarrierName,
			PropertyName:         propertyName,
		})
		departures[date] = departure.Unix()
	}

	sort.Slice(costs, func(i, j int) bool {
		return departures[costs[i].DepartureDate] < departures[costs[j].DepartureDate]
	})

	return costs
}

// roundDiv divides two non-negative integers rounding half-up.
func roundDiv(a, b int) int {
	return (a + b/2) / b
}
