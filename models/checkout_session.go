package models

import "time"

// RateState is the serialized exchange-rate state of a checkout session.
// Once Locked is true, LockedRate is authoritative until explicitly
// unlocked; live-rate refreshes no longer affect the session.
type RateState struct {
	LiveRate   float64 `json:"liveRate"`
	Locked     bool    `json:"locked"`
	LockedRate float64 `json:"lockedRate,omitempty"`
}

// CheckoutSession holds context between the price quote and final payment.
// Stored in Redis under SessionID with a TTL.
type CheckoutSession struct {
	SessionID       string         `json:"sessionId"`
	UserID          string         `json:"userId"`
	ServiceID       string         `json:"serviceId"`
	Selections      AddonSelection `json:"selections"`
	Breakdown       PriceBreakdown `json:"breakdown"`
	Rate            RateState      `json:"rate"`
	DisplayCurrency Currency       `json:"displayCurrency"`
	DisplayLocale   Locale         `json:"displayLocale"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// CheckoutQuote is the client-facing view of a session: the authoritative
// MXN breakdown plus a display rendering in the session's chosen currency.
type CheckoutQuote struct {
	SessionID       string         `json:"sessionId"`
	Breakdown       PriceBreakdown `json:"breakdown"`
	Currency        Currency       `json:"currency"`
	RateLocked      bool           `json:"rateLocked"`
	EffectiveRate   float64        `json:"effectiveRate"`
	DisplayTotal    string         `json:"displayTotal"`
	DisplaySubtotal string         `json:"displaySubtotal"`
	DisplayFee      string         `json:"displayFee"`
}
