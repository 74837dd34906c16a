package models

import "time"

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	UserID          string
	AmountMinor     int64 // integer MXN minor units, always
	Currency        string
	PaymentMethodID string
	Idempotency     string
	Description     string
	Metadata        map[string]string
}

type Invoice struct {
	InvoiceID   string    `bson:"invoice_id" json:"invoiceId"`
	UserID      string    `bson:"user_id" json:"userId"`
	BookingID   string    `bson:"booking_id" json:"bookingId,omitempty"`
	AmountMinor int64     `bson:"amount_minor" json:"amountMinor"`
	Currency    string    `bson:"currency" json:"currency"`
	Status      string    `bson:"status" json:"status"`
	PaymentID   string    `bson:"payment_id" json:"paymentId"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
	Error       string    `bson:"error,omitempty" json:"error,omitempty"`
}
