package checkout

import (
	"context"
	"fmt"
	"time"

	"hogarlink/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentGateway charges the authoritative MXN minor-unit total.
type PaymentGateway interface {
	Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripeGateway implements PaymentGateway with Stripe PaymentIntents.
type StripeGateway struct {
	Logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

// Charge creates and confirms a PaymentIntent. The amount is always an
// integer minor-unit value in MXN; converted display amounts never reach
// this boundary.
func (g *StripeGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.AmountMinor <= 0 {
		return nil, fmt.Errorf("invalid payment amount %d", req.AmountMinor)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("missing user ID")
	}

	inv := &models.Invoice{
		InvoiceID:   uuid.New().String(),
		UserID:      req.UserID,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Status:      "pending",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		g.Logger.Error("stripe payment failed", zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return inv, fmt.Errorf("payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = string(pi.Status)
	inv.UpdatedAt = time.Now()

	g.Logger.Info("payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amountMinor", req.AmountMinor),
		zap.String("currency", req.Currency))
	return inv, nil
}
