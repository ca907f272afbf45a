// Package domain contains the core business entities and rules for the trip cost
// calendar system. These entities are store-agnostic and form the foundation upon
// which all other components are built.
package domain

// FlightQuote is the cheapest direct round-trip fare sampled for one departure
// date and one trip length. Quotes are uniquely identified by
// (city, date, trip length) in the store.
type FlightQuote struct {
	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// TripLengthDays is the round-trip length in calendar days, including
	// both the departure and return day
	TripLengthDays int `json:"tripLengthDays"`

	// PricePerPerson is the fare for one adult in whole currency units
	PricePerPerson int `json:"pricePerPerson"`

	// CarrierCode is the IATA airline code (e.g., "KE"), may be empty
	CarrierCode string `json:"carrierCode,omitempty"`

	// CarrierName is the airline display name, may be empty
	CarrierName string `json:"carrierName,omitempty"`
}

// HotelQuote is the cheapest nightly rate sampled for one check-in date and one
// trip length. Uniquely identified by (city, check-in date, trip length).
type HotelQuote struct {
	// CheckInDate is the check-in date in YYYY-MM-DD format
	CheckInDate string `json:"checkInDate"`

	// TripLengthDays is the trip length the rate was sampled for
	TripLengthDays int `json:"tripLengthDays"`

	// PricePerNight is the nightly rate in whole currency units
	PricePerNight int `json:"pricePerNight"`

	// PropertyName is the name of the cheapest property, may be empty
	PropertyName string `json:"propertyName,omitempty"`
}

// FlightQuoteSet is a two-level keyed container of flight quotes:
// departure date -> trip length -> quote. Trip length is an independent
// secondary axis per date, not a nested entity with its own lifecycle.
type FlightQuoteSet map[string]map[int]FlightQuote

// Add inserts a quote under its (date, trip length) key, replacing any
// existing quote for the same key.
func (s FlightQuoteSet) Add(q FlightQuote) {
	byLength, ok := s[q.Date]
	if !ok {
		byLength = make(map[int]FlightQuote)
		s[q.Date] = byLength
	}
	byLength[q.TripLengthDays] = q
}

// Get looks up the quote for an exact (date, trip length) pair.
func (s FlightQuoteSet) Get(date string, tripLength int) (FlightQuote, bool) {
	q, ok := s[date][tripLength]
	return q, ok
}

// HotelQuoteSet is a two-level keyed container of hotel quotes:
// check-in date -> trip length -> quote.
type HotelQuoteSet map[string]map[int]HotelQuote

// Add inserts a quote under its (check-in date, trip length) key, replacing
// any existing quote for the same key.
func (s HotelQuoteSet) Add(q HotelQuote) {
	byLength, ok := s[q.CheckInDate]
	if !ok {
		byLength = make(map[int]HotelQuote)
		s[q.CheckInDate] = byLength
	}
	byLength[q.TripLengthDays] = q
}

// Get looks up the quote for an exact (check-in date, trip length) pair.
func (s HotelQuoteSet) Get(date string, tripLength int) (HotelQuote, bool) {
	q, ok := s[date][tripLength]
	return q, ok
}

// ForTripLength returns the subset of quotes sampled for the given trip
// length, keyed by check-in date. Used for the nearest-date hotel fallback,
// which must only consider rates sampled for the same trip length.
func (s HotelQuoteSet) ForTripLength(tripLength int) map[string]HotelQuote {
	result := make(map[string]HotelQuote)
	for date, byLength := range s {
		if q, ok := byLength[tripLength]; ok {
			result[date] = q
		}
	}
	return result
}

// CityQuotes bundles the flight and hotel quote series for one city.
type CityQuotes struct {
	Flights FlightQuoteSet
	Hotels  HotelQuoteSet
}
