package http

// CalendarDTO is the data transfer object for the per-city calendar response.
// It extends the domain calendar with outbound booking links per entry.
type CalendarDTO struct {
	City           CityDTO            `json:"city"`
	TripLengthDays int                `json:"tripLengthDays"`
	Entries        []CalendarEntryDTO `json:"entries"`
	Stats          PriceStatsDTO      `json:"stats"`
}

// CityDTO represents a catalog city in API responses.
type CityDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"nameEn"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	AirportCode string `json:"airportCode"`
}

// CalendarEntryDTO is one departure date's labeled trip cost.
type CalendarEntryDTO struct {
	DepartureDate        string `json:"departureDate"`
	ReturnDate           string `json:"returnDate"`
	FlightPricePerPerson int    `json:"flightPricePerPerson"`
	HotelPricePerNight   int    `json:"hotelPricePerNight"`
	TotalCostForGroup    int    `json:"totalCostForGroup"`
	PerPersonCost        int    `json:"perPersonCost"`
	Label                string `json:"label"`
	HasDirectFlight      bool   `json:"hasDirectFlight"`
	CarrierCode          string `json:"carrierCode,omitempty"`
	CarrierName          string `json:"carrierName,omitempty"`
	PropertyName         string `json:"propertyName,omitempty"`

	// FlightURL and HotelURL are outbound marketplace booking links for
	// this entry's dates
	FlightURL string `json:"flightUrl"`
	HotelURL  string `json:"hotelUrl"`
}

// PriceStatsDTO summarizes the per-person cost distribution of a calendar.
type PriceStatsDTO struct {
	MinCost int    `json:"minCost"`
	MaxCost int    `json:"maxCost"`
	AvgCost int    `json:"avgCost"`
	MinDate string `json:"minDate"`
	Count   int    `json:"count"`
}
