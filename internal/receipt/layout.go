package receipt

import (
	"github.com/patungan/patungan/internal/models"
)

// Canvas metrics. Width is fixed; height grows with the breakdown.
const (
	canvasWidth      = 600.0
	padding          = 40.0
	headerHeight     = 160.0
	footerHeight     = 80.0
	paymentBoxHeight = 220.0
	zigzagHeight     = 12.0
	zigzagStep       = 20.0

	// The tear notches sit on the header's dashed divider line.
	notchY       = 150.0
	notchRadius  = 12.0
	cornerRadius = 20.0

	// Per-friend section metrics.
	contentTop         = 180.0
	friendHeaderHeight = 50.0
	itemRowHeight      = 32.0
	dividerGap         = 20.0
	aggregateRowHeight = 30.0
	totalRowHeight     = 40.0

	// Item labels wider than this are truncated with an ellipsis so the
	// right-aligned amount never collides with the label.
	maxLabelWidth = 350.0
)

// Labels carries every translatable string drawn on the receipt. The
// hosting application localizes; the renderer just draws.
type Labels struct {
	BillSummary   string
	Subtotal      string
	Tax           string
	Service       string
	DeliveryFee   string
	Discount      string
	Total         string
	SendPaymentTo string
	Footer        string
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		BillSummary:   "Bill Summary",
		Subtotal:      "Subtotal",
		Tax:           "Tax",
		Service:       "Service",
		DeliveryFee:   "Delivery Fee",
		Discount:      "Discount",
		Total:         "Total",
		SendPaymentTo: "SEND PAYMENT TO",
		Footer:        "Split with Patungan",
	}
}

// contentHeight accumulates the variable middle of the receipt: one
// header row per friend, one row per item, divider spacing, the
// subtotal row, one row per non-zero aggregate, and the total row.
func contentHeight(breakdown []models.BreakdownEntry) float64 {
	h := 20.0
	for _, e := range breakdown {
		h += friendHeaderHeight
		h += float64(len(e.Items)) * itemRowHeight
		h += dividerGap
		h += aggregateRowHeight // subtotal is always shown
		if e.TaxAmount > 0 {
			h += aggregateRowHeight
		}
		if e.ServiceAmount > 0 {
			h += aggregateRowHeight
		}
		if e.DeliveryFeeAmount > 0 {
			h += aggregateRowHeight
		}
		if e.DiscountAmount > 0 {
			h += aggregateRowHeight
		}
		h += totalRowHeight
	}
	return h
}

// canvasHeight is the full receipt height for a breakdown.
func canvasHeight(breakdown []models.BreakdownEntry) float64 {
	return headerHeight + contentHeight(breakdown) + paymentBoxHeight + footerHeight
}
