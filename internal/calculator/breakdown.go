package calculator

import (
	"math"
	"slices"

	"github.com/patungan/patungan/internal/models"
)

// CalculateBreakdown computes each friend's share of the bill: the
// equal split of every assigned item, a proportional slice of the four
// aggregate amounts, and the final total.
//
// Items are split equally among their assignees regardless of quantity.
// An item with no assignees contributes to nobody's subtotal and is
// excluded from the distribution weights, so its cost silently drops
// out of the split. Friends with a zero subtotal stay in the weight
// vector with weight zero and receive zero fee shares.
//
// useDecimals selects the distribution precision: two fraction digits
// when true, whole units when false. The engine is stateless and has no
// failure path for finite, non-negative input; validation belongs to
// the caller.
func CalculateBreakdown(
	items []models.Item,
	friends []models.Friend,
	taxAmount, serviceAmount, deliveryFeeAmount, discountAmount float64,
	useDecimals bool,
) []models.BreakdownEntry {
	precision := 0
	if useDecimals {
		precision = 2
	}

	// Per-friend item shares and subtotals, which double as the
	// distribution weights.
	entries := make([]models.BreakdownEntry, len(friends))
	subtotals := make([]float64, len(friends))
	for i, friend := range friends {
		var shares []models.ItemShare
		var subtotal float64
		for _, item := range items {
			if !slices.Contains(item.AssignedTo, friend.ID) {
				continue
			}
			splitCount := max(1, len(item.AssignedTo))
			share := item.Price / float64(splitCount)
			shares = append(shares, models.ItemShare{
				Name:       item.Name,
				Share:      share,
				SplitCount: splitCount,
				Quantity:   item.Quantity,
			})
			subtotal += share
		}
		entries[i] = models.BreakdownEntry{Friend: friend, Items: shares}
		subtotals[i] = subtotal
	}

	taxShares := DistributeAmount(taxAmount, subtotals, precision)
	serviceShares := DistributeAmount(serviceAmount, subtotals, precision)
	deliveryShares := DistributeAmount(deliveryFeeAmount, subtotals, precision)
	discountShares := DistributeAmount(discountAmount, subtotals, precision)

	for i := range entries {
		e := &entries[i]
		e.Subtotal = subtotals[i]
		e.TaxAmount = taxShares[i]
		e.ServiceAmount = serviceShares[i]
		e.DeliveryFeeAmount = deliveryShares[i]
		e.DiscountAmount = discountShares[i]
		e.Total = math.Max(0, e.Subtotal+e.TaxAmount+e.ServiceAmount+e.DeliveryFeeAmount-e.DiscountAmount)
	}
	return entries
}
