package models

// CheckoutInput is the client payload opening a checkout session.
type CheckoutInput struct {
	ServiceID       string         `json:"serviceId" binding:"required"`
	Selections      AddonSelection `json:"selections"`
	DisplayCurrency Currency       `json:"displayCurrency,omitempty"`
	DisplayLocale   Locale         `json:"displayLocale,omitempty"`
}

// UpdateSelectionsInput replaces the addon selections of an open session.
type UpdateSelectionsInput struct {
	Selections AddonSelection `json:"selections"`
}

// ConfirmCheckoutInput carries the payment method for final confirmation.
type ConfirmCheckoutInput struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}
