package models

// Item represents a single line item on a receipt.
// Items can be shared among multiple friends.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the item description as it appeared on the receipt.
	Name string `json:"name"`

	// Price is the total line price, not the unit price. An item with
	// quantity 3 carries the price of all three units.
	Price float64 `json:"price"`

	// Quantity is display-only. Splitting is driven solely by AssignedTo.
	Quantity int `json:"quantity"`

	// AssignedTo lists the friend IDs splitting this item equally.
	// Order is irrelevant. An empty list means nobody pays for it.
	AssignedTo []string `json:"assignedTo"`
}

// Friend represents one participant in the split.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string `json:"id"`

	// Name is the display name shown on the receipt.
	Name string `json:"name"`

	// Color is a hex color (e.g. "#EF4444") used for the friend's dot on
	// the rendered receipt. It has no computational role.
	Color string `json:"color"`
}

// PaymentDetails holds the transfer destination shown on the receipt.
// All three fields are free text and pass through to rendering verbatim.
type PaymentDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// Bill is the full shared-bill state persisted by the serving shell.
// The calculator and renderer never depend on Bill; they consume its
// fields as plain arguments.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Title is a human-readable name, auto-generated from the friend
	// list when the client leaves it empty.
	Title string `json:"title"`

	Items   []Item   `json:"items"`
	Friends []Friend `json:"friends"`

	// Aggregate amounts are absolute values, never percentages.
	TaxAmount         float64 `json:"taxAmount"`
	ServiceAmount     float64 `json:"serviceAmount"`
	DeliveryFeeAmount float64 `json:"deliveryFeeAmount"`
	DiscountAmount    float64 `json:"discountAmount"`

	// Currency is the symbol prefixed to totals on the receipt (e.g. "Rp").
	Currency string `json:"currency"`

	// Locale is a BCP 47 tag used for number formatting (e.g. "id-ID").
	Locale string `json:"locale"`

	// UseDecimals selects two fraction digits when true, whole units when
	// false (e.g. IDR is customarily shown without decimals).
	UseDecimals bool `json:"useDecimals"`

	PaymentDetails PaymentDetails `json:"paymentDetails"`

	// CreatedBy is the user ID of the bill creator.
	CreatedBy string `json:"createdBy"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"createdAt"`
}
