package models

// ItemShare is one friend's slice of a single item.
type ItemShare struct {
	// Name is the item name, without quantity or split annotations.
	Name string `json:"name"`

	// Share is this friend's portion of the item price.
	Share float64 `json:"share"`

	// SplitCount is the number of friends splitting the item, at least 1.
	SplitCount int `json:"splitCount"`

	// Quantity mirrors Item.Quantity for display.
	Quantity int `json:"quantity"`
}

// BreakdownEntry is the computed result for one friend: assigned item
// shares, the prorated aggregate amounts, and the final total.
//
// For a friend with a positive subtotal the invariant holds:
//
//	Total == max(0, Subtotal + TaxAmount + ServiceAmount + DeliveryFeeAmount - DiscountAmount)
type BreakdownEntry struct {
	Friend Friend      `json:"friend"`
	Items  []ItemShare `json:"items"`

	// Subtotal is the sum of the item shares.
	Subtotal float64 `json:"subtotal"`

	TaxAmount         float64 `json:"taxAmount"`
	ServiceAmount     float64 `json:"serviceAmount"`
	DeliveryFeeAmount float64 `json:"deliveryFeeAmount"`
	DiscountAmount    float64 `json:"discountAmount"`

	// Total is clamped at zero: a discount share can never push a friend
	// into being owed money.
	Total float64 `json:"total"`
}
