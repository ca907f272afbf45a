// Package usecase contains the business logic for the trip cost calendar:
// joining sparse flight and hotel price series into per-date trip costs,
// classifying costs into percentile tiers, and ranking cities. All functions
// here are pure and synchronous over in-memory data.
package usecase

import (
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

// NearestQuote returns the value whose date key is chronologically closest to
// target. An exact match always wins. Otherwise every key is scanned and the
// minimum absolute day distance is taken; when two keys are equidistant the
// earlier calendar date wins, which keeps the result deterministic regardless
// of map iteration order.
//
// Keys that do not parse as YYYY-MM-DD are skipped. The second return value is
// false when the series is empty, the target is malformed, or no key parsed;
// callers treat that as "no quote available", not as an error.
//
// An O(n) scan per call is fine for the volumes in scope (at most a few
// hundred dates per city).
func NearestQuote[T any](series map[string]T, target string) (T, bool) {
	var zero T

	if v, ok := series[target]; ok {
		return v, true
	}
	if _, err := timeutil.ParseDate(target); err != nil {
		return zero, false
	}

	var (
		best     T
		bestDate string
		bestDist int
		found    bool
	)

	for date, v := range series {
		dist, err := timeutil.DayDistance(date, target)
		if err != nil {
			continue
		}
		// Tie on distance goes to the earlier date. Keys are zero-padded
		// ISO dates here, so string order is calendar order.
		if !found || dist < bestDist || (dist == bestDist && date < bestDate) {
			best = v
			bestDate = date
			bestDist = dist
			found = true
		}
	}

	return best, found
}
