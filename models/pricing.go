package models

// AddonSelection maps addon ids to selected quantities. Ids not defined on
// the catalog entry, and quantities <= 0, contribute nothing; a customer
// holding a stale link never sees an error from pricing.
type AddonSelection map[string]int

// PriceBreakdown is the computed price of a booking, all amounts in integer
// MXN minor units. Total is the only value that may reach the payment
// gateway or persistence.
type PriceBreakdown struct {
	BaseAmount  int64 `json:"baseAmount"`
	AddonAmount int64 `json:"addonAmount"`
	Subtotal    int64 `json:"subtotal"`
	PlatformFee int64 `json:"platformFee"`
	Total       int64 `json:"total"`
}
