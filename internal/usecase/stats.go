package usecase

import (
	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// Stats reduces a trip cost series to its summary statistics.
// MinDate is the departure date of the first trip cost achieving the minimum.
// Empty input yields the zero PriceStats (all-zero fields, empty MinDate),
// never an error.
func Stats(costs []domain.TripCost) domain.PriceStats {
	if len(costs) == 0 {
		return domain.PriceStats{}
	}

	stats := domain.PriceStats{
		MinCost: costs[0].PerPersonCost,
		MaxCost: costs[0].PerPersonCost,
		MinDate: costs[0].DepartureDate,
		Count:   len(costs),
	}

	sum := 0
	for _, c := range costs {
		p := c.PerPersonCost
		sum += p
		if p < stats.MinCost {
			stats.MinCost = p
			stats.MinDate = c.DepartureDate
		}
		if p > stats.MaxCost {
			stats.MaxCost = p
		}
	}
	stats.AvgCost = roundDiv(sum, len(costs))

	return stats
}
