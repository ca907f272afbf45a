package domain

// GroupSize is the fixed number of adults per booking. All prices are quoted
// and combined for a group of this size.
const GroupSize = 2

// Trip length bounds in calendar days, including departure and return day.
const (
	MinTripLength     = 3
	MaxTripLength     = 7
	DefaultTripLength = 5
)

// TripLengths lists every supported trip length in ascending order.
var TripLengths = []int{3, 4, 5, 6, 7}

// ValidTripLength reports whether n is a supported trip length.
func ValidTripLength(n int) bool {
	return n >= MinTripLength && n <= MaxTripLength
}

// TripCost is the combined flight+hotel cost for one departure date and one
// trip length. It is derived on demand from a city's quote series and never
// persisted; it is recomputed whenever the trip length or the underlying
// quotes change.
type TripCost struct {
	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is departure + (tripLengthDays-1) calendar days
	ReturnDate string `json:"returnDate"`

	// FlightPricePerPerson is the round-trip fare for one adult
	FlightPricePerPerson int `json:"flightPricePerPerson"`

	// HotelPricePerNight is the nightly rate; 0 when no usable hotel quote
	// exists anywhere for this trip length (known data-quality artifact,
	// surfaced as-is rather than filtered)
	HotelPricePerNight int `json:"hotelPricePerNight"`

	// TripLengthDays is the round-trip length in calendar days
	TripLengthDays int `json:"tripLengthDays"`

	// TotalCostForGroup = flight*GroupSize + hotel*(tripLengthDays-1)
	TotalCostForGroup int `json:"totalCostForGroup"`

	// PerPersonCost is TotalCostForGroup/GroupSize rounded half-up
	PerPersonCost int `json:"perPersonCost"`

	// HasDirectFlight is always true; only nonstop quotes are collected
	HasDirectFlight bool `json:"hasDirectFlight"`

	// CarrierCode is the IATA code of the quoted airline, may be empty
	CarrierCode string `json:"carrierCode,omitempty"`

	// CarrierName is the airline display name, may be empty
	CarrierName string `json:"carrierName,omitempty"`

	// PropertyName is the quoted hotel's name, may be empty
	PropertyName string `json:"propertyName,omitempty"`
}

// PriceLabel is a relative price tier for one TripCost, classified against
// the distribution of per-person costs for the same city and trip length.
type PriceLabel string

// Price tiers from cheapest to most expensive.
const (
	LabelLowest    PriceLabel = "lowest"
	LabelCheap     PriceLabel = "cheap"
	LabelNormal    PriceLabel = "normal"
	LabelExpensive PriceLabel = "expensive"
	LabelPeak      PriceLabel = "peak"
)

// PriceStats summarizes a trip cost series for calendar display.
type PriceStats struct {
	// MinCost is the lowest per-person cost in the series
	MinCost int `json:"minCost"`

	// MaxCost is the highest per-person cost in the series
	MaxCost int `json:"maxCost"`

	// AvgCost is the mean per-person cost, rounded half-up
	AvgCost int `json:"avgCost"`

	// MinDate is the departure date of the first occurrence of MinCost
	MinDate string `json:"minDate"`

	// Count is the number of trip costs in the series
	Count int `json:"count"`
}

// CalendarEntry is a TripCost together with its relative price tier.
type CalendarEntry struct {
	TripCost

	// Label is the price tier within this city+tripLength distribution
	Label PriceLabel `json:"label"`
}

// Calendar is the full per-date cost view for one city and trip length.
type Calendar struct {
	// City is the city the calendar was computed for
	City City `json:"city"`

	// TripLengthDays is the trip length the calendar was computed for
	TripLengthDays int `json:"tripLengthDays"`

	// Entries holds one labeled cost per flight-quoted departure date,
	// sorted ascending by calendar date
	Entries []CalendarEntry `json:"entries"`

	// Stats summarizes the per-person cost distribution
	Stats PriceStats `json:"stats"`
}
