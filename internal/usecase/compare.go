package usecase

import (
	"sort"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// CompareCities aggregates every city's quotes for one trip length and ranks
// the results ascending by minimum per-person cost. Cities whose aggregation
// yields no trip costs are excluded from the output entirely, not zero-filled.
//
// Trip length validation is the caller's responsibility; this function
// assumes a value in the supported range.
func CompareCities(cities []domain.City, quotes map[string]domain.CityQuotes, tripLength int) []domain.CityCostSummary {
	summaries := make([]domain.CityCostSummary, 0, len(cities))

	for _, city := range cities {
		cq, ok := quotes[city.ID]
		if !ok {
			continue
		}

		costs := AggregateTripCosts(cq.Flights, cq.Hotels, tripLength)
		if len(costs) == 0 {
			continue
		}

		stats := Stats(costs)
		summaries = append(summaries, domain.CityCostSummary{
			CityID:           city.ID,
			DisplayName:      city.Name,
			CountryName:      city.Country,
			Region:           city.Region,
			MinPerPersonCost: stats.MinCost,
			AvgPerPersonCost: stats.AvgCost,
			CheapestDate:     stats.MinDate,
			DataPointCount:   stats.Count,
		})
	}

	// Stable sort keeps catalog order for cities with equal minimums.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].MinPerPersonCost < summaries[j].MinPerPersonCost
	})

	return summaries
}
