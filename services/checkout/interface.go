package checkout

import (
	"context"

	bookingRepo "hogarlink/database/repository/booking"
	invoiceRepo "hogarlink/database/repository/invoice"
	"hogarlink/models"
	"hogarlink/services/catalog"
	"hogarlink/services/currency"
	"hogarlink/services/pricing"

	"go.uber.org/zap"
)

// CheckoutService manages the stateful checkout flow: quote, rate lock,
// payment, booking record.
type CheckoutService interface {
	StartSession(ctx context.Context, userID string, in models.CheckoutInput) (*models.CheckoutQuote, error)
	UpdateSelections(ctx context.Context, userID, sessionID string, selections models.AddonSelection) (*models.CheckoutQuote, error)
	Quote(ctx context.Context, userID, sessionID string) (*models.CheckoutQuote, error)
	LockRate(ctx context.Context, userID, sessionID string) (*models.CheckoutQuote, error)
	UnlockRate(ctx context.Context, sessionID string) (*models.CheckoutQuote, error)
	Confirm(ctx context.Context, userID, sessionID, paymentMethodID string) (*models.Booking, error)
	Cancel(ctx context.Context, userID, sessionID string) error
}

// RateSource supplies the process-wide last-known-good MXN-per-USD rate.
type RateSource interface {
	Current() float64
}

// ReceiptEnqueuer hands a confirmed booking to the background receipt worker.
type ReceiptEnqueuer interface {
	EnqueueReceipt(ctx context.Context, booking models.Booking) error
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Catalog   catalog.CatalogService
	Pricing   pricing.Engine
	Rates     RateSource
	Formatter currency.Formatter
	Store     SessionStore
	Gateway   PaymentGateway
	Bookings  bookingRepo.BookingRepository
	Invoices  invoiceRepo.InvoiceRepository
	Receipts  ReceiptEnqueuer
	Logger    *zap.Logger
}
