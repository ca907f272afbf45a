package domain

// City describes a destination served by the calendar. The catalog is compiled
// in; collection jobs and the API both iterate it.
type City struct {
	// ID is the stable identifier used in URLs and store rows (e.g., "tokyo")
	ID string `json:"id"`

	// Name is the localized display name
	Name string `json:"name"`

	// NameEn is the English name
	NameEn string `json:"nameEn"`

	// Country is the localized country display name
	Country string `json:"country"`

	// Region groups cities for comparison views (e.g., "asia", "europe")
	Region string `json:"region"`

	// AirportCode is the IATA code of the primary arrival airport
	AirportCode string `json:"airportCode"`

	// AirportName is the localized airport display name
	AirportName string `json:"airportName"`

	// MarketplaceRegionID is the marketplace's internal region identifier,
	// used by the hotel search endpoint
	MarketplaceRegionID int `json:"-"`

	// DowntownPOIID narrows hotel searches to the city center, may be empty
	DowntownPOIID string `json:"-"`
}

// cities is the supported destination catalog, in display order.
var cities = []City{
	{ID: "tokyo", Name: "도쿄", NameEn: "Tokyo", Country: "일본", Region: "asia", AirportCode: "NRT", AirportName: "나리타", MarketplaceRegionID: 6139291, DowntownPOIID: "14048"},
	{ID: "osaka", Name: "오사카", NameEn: "Osaka", Country: "일본", Region: "asia", AirportCode: "KIX", AirportName: "간사이", MarketplaceRegionID: 6139293, DowntownPOIID: "14province"},
	{ID: "fukuoka", Name: "후쿠오카", NameEn: "Fukuoka", Country: "일본", Region: "asia", AirportCode: "FUK", AirportName: "후쿠오카", MarketplaceRegionID: 6139295, DowntownPOIID: "14052"},
	{ID: "taipei", Name: "타이베이", NameEn: "Taipei", Country: "대만", Region: "asia", AirportCode: "TPE", AirportName: "타오위안", MarketplaceRegionID: 6139301, DowntownPOIID: "118930"},
	{ID: "bangkok", Name: "방콕", NameEn: "Bangkok", Country: "태국", Region: "asia", AirportCode: "BKK", AirportName: "수완나품", MarketplaceRegionID: 524, DowntownPOIID: "118873"},
	{ID: "danang", Name: "다낭", NameEn: "Da Nang", Country: "베트남", Region: "asia", AirportCode: "DAD", AirportName: "다낭", MarketplaceRegionID: 6139310, DowntownPOIID: "118901"},
	{ID: "singapore", Name: "싱가포르", NameEn: "Singapore", Country: "싱가포르", Region: "asia", AirportCode: "SIN", AirportName: "창이", MarketplaceRegionID: 6139320, DowntownPOIID: "118940"},
	{ID: "paris", Name: "파리", NameEn: "Paris", Country: "프랑스", Region: "europe", AirportCode: "CDG", AirportName: "샤를드골", MarketplaceRegionID: 6139506, DowntownPOIID: "118971"},
	{ID: "rome", Name: "로마", NameEn: "Rome", Country: "이탈리아", Region: "europe", AirportCode: "FCO", AirportName: "피우미치노", MarketplaceRegionID: 6139510, DowntownPOIID: "118980"},
	{ID: "newyork", Name: "뉴욕", NameEn: "New York", Country: "미국", Region: "america", AirportCode: "JFK", AirportName: "존 F. 케네디", MarketplaceRegionID: 6139601, DowntownPOIID: "119010"},
}

// Cities returns the destination catalog in display order.
// The returned slice must not be mutated.
func Cities() []City {
	return cities
}

// CityByID looks up a city by its identifier.
func CityByID(id string) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// CityCostSummary is a city's reduced trip cost series for one trip length,
// used by the cross-city comparison view. Derived, never persisted.
type CityCostSummary struct {
	// CityID identifies the city
	CityID string `json:"cityId"`

	// DisplayName is the city's localized name
	DisplayName string `json:"displayName"`

	// CountryName is the localized country name
	CountryName string `json:"countryName"`

	// Region groups cities for the comparison view
	Region string `json:"region"`

	// MinPerPersonCost is the exact minimum per-person cost
	MinPerPersonCost int `json:"minPerPersonCost"`

	// AvgPerPersonCost is the mean per-person cost, rounded half-up
	AvgPerPersonCost int `json:"avgPerPersonCost"`

	// CheapestDate is the departure date of the first minimum occurrence
	CheapestDate string `json:"cheapestDate"`

	// DataPointCount is the number of trip costs behind the summary
	DataPointCount int `json:"dataPointCount"`
}
