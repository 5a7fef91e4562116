// Package calculator implements the bill allocation engine: equal item
// splitting plus exact proportional distribution of aggregate amounts.
package calculator

import (
	"math"
	"sort"
)

// DistributeAmount splits total across len(weights) recipients in
// proportion to their weights using the Largest Remainder Method.
//
// The returned shares sum to total rounded at the given precision,
// exactly. Naive proportional division with independent rounding can
// drift by the cumulative rounding error; instead the amount is scaled
// to integer minor units (cents at precision 2, whole units at
// precision 0), each recipient gets the floor of its ideal share, and
// the leftover units go to the recipients with the largest fractional
// remainders. Exact remainder ties resolve to the earliest index.
//
// When weights is empty, total is zero, or every weight is zero, the
// amount is not distributed and every share is zero.
func DistributeAmount(total float64, weights []float64, precision int) []float64 {
	shares := make([]float64, len(weights))
	if len(weights) == 0 || total == 0 {
		return shares
	}

	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		return shares
	}

	multiplier := math.Pow(10, float64(precision))
	totalUnits := int64(math.Round(total * multiplier))

	type remainder struct {
		index int
		frac  float64
	}

	units := make([]int64, len(weights))
	remainders := make([]remainder, len(weights))
	var allocated int64

	for i, w := range weights {
		raw := float64(totalUnits) * (w / totalWeight)
		base := math.Floor(raw)
		units[i] = int64(base)
		allocated += int64(base)
		remainders[i] = remainder{index: i, frac: raw - base}
	}

	// Stable sort keeps the original order on equal remainders.
	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})

	deficit := totalUnits - allocated
	for i := int64(0); i < deficit; i++ {
		units[remainders[i].index]++
	}

	for i, u := range units {
		shares[i] = float64(u) / multiplier
	}
	return shares
}
