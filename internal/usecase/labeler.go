package usecase

import (
	"sort"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// Percentile thresholds for price tier classification.
// A cost at or below the 10th percentile of its distribution is "lowest",
// at or below the 25th "cheap", at or above the 90th "peak", at or above
// the 75th "expensive"; everything else is "normal".
const (
	percentileLowest    = 0.10
	percentileCheap     = 0.25
	percentileExpensive = 0.75
	percentilePeak      = 0.90
)

// PriceLabeler classifies per-person costs against a fixed distribution
// snapshot. The snapshot is sorted once at construction; Classify is
// stateless and safe for concurrent use.
//
// A labeler is only valid for the distribution it was built from. Rebuild it
// whenever the underlying cost series changes (different city or trip
// length); never reuse one across distributions.
type PriceLabeler struct {
	sorted []int
}

// NewPriceLabeler builds a labeler over a copy of the given per-person costs.
func NewPriceLabeler(costs []int) *PriceLabeler {
	sorted := make([]int, len(costs))
	copy(sorted, costs)
	sort.Ints(sorted)
	return &PriceLabeler{sorted: sorted}
}

// Classify returns the price tier for a cost within the labeler's
// distribution. An empty distribution classifies everything as normal.
//
// The percentile is i/n where i is the smallest index with sorted[i] >= cost.
// Check order matters and is part of the contract: lowest and cheap are
// evaluated before peak and expensive.
func (l *PriceLabeler) Classify(cost int) domain.PriceLabel {
	n := len(l.sorted)
	if n == 0 {
		return domain.LabelNormal
	}

	i := sort.SearchInts(l.sorted, cost)
	percentile := float64(i) / float64(n)

	switch {
	case percentile <= percentileLowest:
		return domain.LabelLowest
	case percentile <= percentileCheap:
		return domain.LabelCheap
	case percentile >= percentilePeak:
		return domain.LabelPeak
	case percentile >= percentileExpensive:
		return domain.LabelExpensive
	default:
		return domain.LabelNormal
	}
}

// perPersonCosts extracts the per-person cost series from trip costs.
func perPersonCosts(costs []domain.TripCost) []int {
	result := make([]int, len(costs))
	for i, c := range costs {
		result[i] = c.PerPersonCost
	}
	return result
}
