package http

import (
	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/deeplink"
	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// ToCalendarDTO converts a domain Calendar to its API representation,
// attaching marketplace booking links to every entry.
func ToCalendarDTO(cal *domain.Calendar) *CalendarDTO {
	if cal == nil {
		return nil
	}

	dto := &CalendarDTO{
		City:           ToCityDTO(cal.City),
		TripLengthDays: cal.TripLengthDays,
		Entries:        make([]CalendarEntryDTO, len(cal.Entries)),
		Stats: PriceStatsDTO{
			MinCost: cal.Stats.MinCost,
			MaxCost: cal.Stats.MaxCost,
			AvgCost: cal.Stats.AvgCost,
			MinDate: cal.Stats.MinDate,
			Count:   cal.Stats.Count,
		},
	}

	for i, entry := range cal.Entries {
		dto.Entries[i] = ToCalendarEntryDTO(cal.City, entry)
	}

	return dto
}

// ToCalendarEntryDTO converts one labeled trip cost, building the booking
// links from the entry's departure and return dates.
func ToCalendarEntryDTO(city domain.City, entry domain.CalendarEntry) CalendarEntryDTO {
	return CalendarEntryDTO{
		DepartureDate:        entry.DepartureDate,
		ReturnDate:           entry.ReturnDate,
		FlightPricePerPerson: entry.FlightPricePerPerson,
		HotelPricePerNight:   entry.HotelPricePerNight,
		TotalCostForGroup:    entry.TotalCostForGroup,
		PerPersonCost:        entry.PerPersonCost,
		Label:                string(entry.Label),
		HasDirectFlight:      entry.HasDirectFlight,
		CarrierCode:          entry.CarrierCode,
		CarrierName:          entry.CarrierName,
		PropertyName:         entry.PropertyName,
		FlightURL:            deeplink.FlightURL(city, entry.DepartureDate, entry.ReturnDate),
		HotelURL:             deeplink.HotelURL(city, entry.DepartureDate, entry.ReturnDate),
	}
}

// ToCityDTO converts a catalog city to its API representation.
func ToCityDTO(city domain.City) CityDTO {
	return CityDTO{
		ID:          city.ID,
		Name:        city.Name,
		NameEn:      city.NameEn,
		Country:     city.Country,
		Region:      city.Region,
		AirportCode: city.AirportCode,
	}
}

// ToCityDTOs converts the catalog for the cities endpoint.
func ToCityDTOs(cities []domain.City) []CityDTO {
	dtos := make([]CityDTO, len(cities))
	for i, c := range cities {
		dtos[i] = ToCityDTO(c)
	}
	return dtos
}
