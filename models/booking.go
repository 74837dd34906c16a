package models

import "time"

// Booking is the persisted record of a confirmed checkout. FixedPriceTotal
// is the integer MXN minor-unit amount that was charged; display
// conversions are never stored.
type Booking struct {
	ID              string         `bson:"_id" json:"id"`
	UserID          string         `bson:"user_id" json:"userId"`
	ServiceID       string         `bson:"service_id" json:"serviceId"`
	ServiceName     string         `bson:"service_name" json:"serviceName"`
	Selections      AddonSelection `bson:"selections" json:"selections"`
	FixedPriceTotal int64          `bson:"fixed_price_total" json:"fixedPriceTotal"`
	Currency        string         `bson:"currency" json:"currency"`
	PaymentIntentID string         `bson:"payment_intent_id" json:"paymentIntentId"`
	Status          string         `bson:"status" json:"status"`
	CreatedAt       time.Time      `bson:"created_at" json:"createdAt"`
}

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)
