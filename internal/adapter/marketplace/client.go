// Package marketplace is the HTTP client for the upstream travel marketplace
// API. It exposes the two endpoints the collection jobs consume: the flight
// price calendar window and the union stay search.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/retry"
)

const (
	flightWindowPath = "/flight/api/price/calendar/window"
	staySearchPath   = "/unionstay/v2/front/search"

	// The stay endpoint rejects requests without the accommodation origin.
	stayOrigin  = "https://accommodation.myrealtrip.com"
	stayReferer = "https://accommodation.myrealtrip.com/"

	adultCount = 2
)

// Stay is one property row from the union stay search.
type Stay struct {
	ID            int64
	Name          string
	SalePrice     int
	OriginalPrice int
}

// Client calls the marketplace API with a bounded timeout and the
// marketplace retry policy.
type Client struct {
	baseURL string
	client  *http.Client
	retry   retry.Config
	log     *logger.Logger
}

// NewClient creates a marketplace client.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		retry:   retry.MarketplaceConfig,
		log:     log,
	}
}

type flightWindowRequest struct {
	Airlines      []string `json:"airlines"`
	DepartureCity string   `json:"departureCity"`
	ArrivalCity   string   `json:"arrivalCity"`
	DepartureDate string   `json:"departureDate"`
	Period        int      `json:"period"`
	Transfer      int      `json:"transfer"`
}

type flightWindowResponse struct {
	Results []struct {
		DepartureDate string `json:"departureDate"`
		ArrivalDate   string `json:"arrivalDate"`
		Airline       string `json:"airline"`
		TotalPrice    int    `json:"totalPrice"`
	} `json:"flightWindowInfoResults"`
}

// FlightWindow returns the cheapest direct round-trip fare per departure date
// for one trip length, starting from departureDate. The carrier name is left
// empty; the calendar window only reports codes.
func (c *Client) FlightWindow(ctx context.Context, originAirport, arrivalAirport, departureDate string, tripLength int) ([]domain.FlightQuote, error) {
	body, err := json.Marshal(flightWindowRequest{
		Airlines:      []string{"ALL"},
		DepartureCity: originAirport,
		ArrivalCity:   arrivalAirport,
		DepartureDate: departureDate,
		Period:        tripLength,
		Transfer:      0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal flight window request: %w", err)
	}

	u := c.baseURL + flightWindowPath
	payload, err := retry.DoWithResult(ctx, func() (flightWindowResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
		if err != nil {
			return flightWindowResponse{}, err
		}
		req.Header.Set("Content-Type", "application/json")

		var out flightWindowResponse
		if err := c.do(req, &out); err != nil {
			return flightWindowResponse{}, err
		}
		return out, nil
	}, c.retry)
	if err != nil {
		return nil, fmt.Errorf("flight window %s->%s period=%d: %w", originAirport, arrivalAirport, tripLength, err)
	}

	quotes := make([]domain.FlightQuote, 0, len(payload.Results))
	for _, r := range payload.Results {
		quotes = append(quotes, domain.FlightQuote{
			Date:           r.DepartureDate,
			TripLengthDays: tripLength,
			PricePerPerson: r.TotalPrice,
			CarrierCode:    r.Airline,
		})
	}
	return quotes, nil
}

type staySearchResponse struct {
	Data struct {
		DynamicArea struct {
			Sections []struct {
				LoggingMeta struct {
					Bizlog struct {
						Data struct {
							ItemID            int64  `json:"item_id"`
							ItemName          string `json:"item_name"`
							ItemPrice         int    `json:"item_price"`
							ItemOriginalPrice int    `json:"item_original_price"`
						} `json:"data"`
					} `json:"BIZLOG"`
				} `json:"loggingMeta"`
			} `json:"sections"`
		} `json:"dynamicArea"`
	} `json:"data"`
}

// StaySearch returns the four-star properties available in a city for one
// stay window. Sections without a price or name are skipped.
func (c *Client) StaySearch(ctx context.Context, city domain.City, checkIn, checkOut string) ([]Stay, error) {
	filters := "starRating:fourstar"
	if city.DowntownPOIID != "" {
		filters += ",stayPoi:" + city.DowntownPOIID
	}

	params := url.Values{}
	params.Set("keyword", city.Name)
	params.Set("checkIn", checkIn)
	params.Set("checkOut", checkOut)
	params.Set("adultCount", strconv.Itoa(adultCount))
	params.Set("childCount", "0")
	params.Set("isDomestic", "false")
	params.Set("mrtKeyName", "")
	params.Set("selected", filters)
	if city.MarketplaceRegionID > 0 {
		params.Set("regionId", strconv.Itoa(city.MarketplaceRegionID))
	}

	u := c.baseURL + staySearchPath + "?" + params.Encode()
	payload, err := retry.DoWithResult(ctx, func() (staySearchResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return staySearchResponse{}, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Origin", stayOrigin)
		req.Header.Set("Referer", stayReferer)

		var out staySearchResponse
		if err := c.do(req, &out); err != nil {
			return staySearchResponse{}, err
		}
		return out, nil
	}, c.retry)
	if err != nil {
		return nil, fmt.Errorf("stay search %s %s~%s: %w", city.ID, checkIn, checkOut, err)
	}

	var stays []Stay
	for _, section := range payload.Data.DynamicArea.Sections {
		d := section.LoggingMeta.Bizlog.Data
		if d.ItemPrice == 0 || d.ItemName == "" {
			continue
		}
		original := d.ItemOriginalPrice
		if original == 0 {
			original = d.ItemPrice
		}
		stays = append(stays, Stay{
			ID:            d.ItemID,
			Name:          d.ItemName,
			SalePrice:     d.ItemPrice,
			OriginalPrice: original,
		})
	}
	return stays, nil
}

// do executes a request and decodes a JSON body into out.
// Non-2xx statuses are returned as errors so the retry policy re-attempts them.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("url", req.URL.Path).
			Msg("Marketplace request failed")
		return fmt.Errorf("marketplace API error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// CheapestStay returns the stay with the lowest sale price.
// The boolean is false when the slice is empty.
func CheapestStay(stays []Stay) (Stay, bool) {
	if len(stays) == 0 {
		return Stay{}, false
	}
	cheapest := stays[0]
	for _, s := range stays[1:] {
		if s.SalePrice < cheapest.SalePrice {
			cheapest = s
		}
	}
	return cheapest, true
}
