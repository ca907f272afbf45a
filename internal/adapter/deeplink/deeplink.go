// Package deeplink builds outbound marketplace URLs for flight and hotel
// bookings. The URL shapes follow the marketplace's web booking flows.
package deeplink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

const (
	flightBaseURL = "https://flights.myrealtrip.com/air/b2c/AIR/INT/AIRINTSCH0100100010.k1"
	hotelBaseURL  = "https://accommodation.myrealtrip.com/union/products"

	flightSessionID = "air:b2c:SELK138RB:SELK138RB::00"

	// originAirportName is the localized name of the fixed departure airport.
	originAirportName = "인천"
	originAirportCode = "ICN"
)

// FlightURL builds a round-trip nonstop flight search URL for a group of
// domain.GroupSize adults departing on departureDate and returning on returnDate.
func FlightURL(city domain.City, departureDate, returnDate string) string {
	dep := url.QueryEscape(originAirportName)
	arr := url.QueryEscape(city.AirportName)
	code := city.AirportCode

	// The booking flow expects the leg parameters repeated positionally
	// (outbound, inbound, two empty open-jaw slots), so this segment is
	// assembled by hand rather than through url.Values.
	legs := strings.Join([]string{
		fmt.Sprintf("depctycd=%s&depctycd=%s&depctycd=&depctycd=", originAirportCode, code),
		fmt.Sprintf("depctynm=%s&depctynm=%s&depctynm=&depctynm=", dep, arr),
		fmt.Sprintf("arrctycd=%s&arrctycd=%s&arrctycd=&arrctycd=", code, originAirportCode),
		fmt.Sprintf("arrctynm=%s&arrctynm=%s&arrctynm=&arrctynm=", arr, dep),
		fmt.Sprintf("depdt=%s&depdt=%s&depdt=&depdt=", departureDate, returnDate),
		"opencase=N&opencase=N&opencase=N&openday=&openday=&openday=",
	}, "&")

	params := url.Values{}
	params.Set("initform", "RT")
	params.Set("domintgubun", "I")
	params.Set("depdomintgbn", "I")
	params.Set("tasktype", "B2C")
	params.Set("servicecacheyn", "Y")
	params.Set("adtcount", strconv.Itoa(domain.GroupSize))
	params.Set("chdcount", "0")
	params.Set("infcount", "0")
	params.Set("cabinclass", "Y")
	params.Set("cabinsepflag", "Y")
	params.Set("secrchType", "FARE")
	params.Set("nonstop", "Y")
	params.Set("availcount", "250")
	params.Set("KSESID", flightSessionID)

	return fmt.Sprintf("%s?%s&%s", flightBaseURL, legs, params.Encode())
}

// HotelURL builds a hotel search URL for one room, domain.GroupSize adults,
// scoped to the city's marketplace region.
func HotelURL(city domain.City, checkIn, checkOut string) string {
	params := url.Values{}
	params.Set("checkIn", checkIn)
	params.Set("checkOut", checkOut)
	params.Set("adultCount", strconv.Itoa(domain.GroupSize))
	params.Set("childCount", "0")
	params.Set("childAges", "")
	params.Set("regionId", strconv.Itoa(city.MarketplaceRegionID))
	params.Set("keyword", city.Name)
	params.Set("roomCount", "1")
	params.Set("isDomestic", "false")
	params.Set("mrtKeyName", "")

	return fmt.Sprintf("%s?%s", hotelBaseURL, params.Encode())
}
