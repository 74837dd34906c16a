package checkout

import (
	"context"
	"fmt"
	"time"

	"hogarlink/models"
	"hogarlink/services/currency"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sessions expire if the customer walks away mid-checkout.
const sessionTTL = 15 * time.Minute

// StartSession resolves the catalog entry, prices the selection, seeds the
// session's exchange-rate state from the live feed and stores the session.
func (s *DefaultCheckoutService) StartSession(ctx context.Context, userID string, in models.CheckoutInput) (*models.CheckoutQuote, error) {
	entry, ok := s.Catalog.GetEntry(in.ServiceID)
	if !ok {
		return nil, ErrUnknownService
	}

	displayCurrency := in.DisplayCurrency
	if displayCurrency == "" {
		displayCurrency = models.CurrencyMXN
	}
	if !displayCurrency.Supported() {
		return nil, fmt.Errorf("display currency %q: %w", in.DisplayCurrency, currency.ErrUnsupportedCurrencyPair)
	}
	displayLocale := in.DisplayLocale
	if displayLocale == "" {
		displayLocale = models.LocaleEsMX
	}

	session := models.CheckoutSession{
		SessionID:       uuid.New().String(),
		UserID:          userID,
		ServiceID:       entry.ID,
		Selections:      in.Selections,
		Breakdown:       s.Pricing.ComputeTotal(entry, in.Selections),
		Rate:            models.RateState{LiveRate: s.Rates.Current()},
		DisplayCurrency: displayCurrency,
		DisplayLocale:   displayLocale,
		CreatedAt:       time.Now(),
	}

	if err := s.Store.Save(ctx, session, sessionTTL); err != nil {
		return nil, err
	}
	return s.quoteFor(session)
}

// UpdateSelections replaces the addon selections and re-prices the session.
func (s *DefaultCheckoutService) UpdateSelections(ctx context.Context, userID, sessionID string, selections models.AddonSelection) (*models.CheckoutQuote, error) {
	session, err := s.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	entry, ok := s.Catalog.GetEntry(session.ServiceID)
	if !ok {
		return nil, ErrUnknownService
	}
	session.Selections = selections
	session.Breakdown = s.Pricing.ComputeTotal(entry, selections)

	if err := s.Store.Save(ctx, *session, sessionTTL); err != nil {
		return nil, err
	}
	return s.quoteFor(*session)
}

// Quote returns the current breakdown and display rendering.
func (s *DefaultCheckoutService) Quote(ctx context.Context, userID, sessionID string) (*models.CheckoutQuote, error) {
	session, err := s.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, *session, sessionTTL); err != nil {
		return nil, err
	}
	return s.quoteFor(*session)
}

// LockRate freezes the session's exchange rate. Idempotent.
func (s *DefaultCheckoutService) LockRate(ctx context.Context, userID, sessionID string) (*models.CheckoutQuote, error) {
	session, err := s.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	conv := currency.Restore(session.Rate)
	conv.Lock()
	session.Rate = conv.State()

	if err := s.Store.Save(ctx, *session, sessionTTL); err != nil {
		return nil, err
	}
	return s.quoteFor(*session)
}

// UnlockRate returns rate authority to the live feed. Administrative only;
// not reachable by customers.
func (s *DefaultCheckoutService) UnlockRate(ctx context.Context, sessionID string) (*models.CheckoutQuote, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	conv := currency.Restore(session.Rate)
	conv.Unlock()
	conv.RefreshLiveRate(s.Rates.Current())
	session.Rate = conv.State()

	if err := s.Store.Save(ctx, *session, sessionTTL); err != nil {
		return nil, err
	}
	return s.quoteFor(*session)
}

// Confirm charges the authoritative MXN minor-unit total, persists the
// booking and tears down the session. The display conversion plays no part
// in the charged amount.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, userID, sessionID, paymentMethodID string) (*models.Booking, error) {
	session, err := s.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	entry, ok := s.Catalog.GetEntry(session.ServiceID)
	if !ok {
		return nil, ErrUnknownService
	}

	bookingID := uuid.New().String()
	invoice, chargeErr := s.Gateway.Charge(ctx, models.PaymentRequest{
		UserID:          userID,
		AmountMinor:     session.Breakdown.Total,
		Currency:        "mxn",
		PaymentMethodID: paymentMethodID,
		Idempotency:     session.SessionID,
		Description:     entry.Name,
		Metadata: map[string]string{
			"sessionId": session.SessionID,
			"serviceId": entry.ID,
		},
	})
	// Failed charges still leave an invoice record for reconciliation.
	if invoice != nil {
		if chargeErr == nil {
			invoice.BookingID = bookingID
		}
		if s.Invoices != nil {
			if err := s.Invoices.Create(ctx, invoice); err != nil {
				s.Logger.Warn("failed to persist invoice", zap.String("invoice", invoice.InvoiceID), zap.Error(err))
			}
		}
	}
	if chargeErr != nil {
		return nil, chargeErr
	}

	booking := models.Booking{
		ID:              bookingID,
		UserID:          userID,
		ServiceID:       entry.ID,
		ServiceName:     entry.Name,
		Selections:      session.Selections,
		FixedPriceTotal: session.Breakdown.Total,
		Currency:        "mxn",
		PaymentIntentID: invoice.PaymentID,
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
	if err := s.Bookings.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("payment succeeded but booking persist failed: %w", err)
	}

	if s.Receipts != nil {
		if err := s.Receipts.EnqueueReceipt(ctx, booking); err != nil {
			s.Logger.Warn("failed to enqueue booking receipt", zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to delete checkout session", zap.String("session", sessionID), zap.Error(err))
	}
	return &booking, nil
}

// Cancel discards the session.
func (s *DefaultCheckoutService) Cancel(ctx context.Context, userID, sessionID string) error {
	if _, err := s.loadOwned(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

// load fetches a session and, while unlocked, re-seeds its live rate from
// the feed so a subsequent Lock observes the most recent completed refresh.
func (s *DefaultCheckoutService) load(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Rate.Locked {
		conv := currency.Restore(session.Rate)
		conv.RefreshLiveRate(s.Rates.Current())
		session.Rate = conv.State()
	}
	return session, nil
}

func (s *DefaultCheckoutService) loadOwned(ctx context.Context, userID, sessionID string) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionOwnership
	}
	return session, nil
}

func (s *DefaultCheckoutService) quoteFor(session models.CheckoutSession) (*models.CheckoutQuote, error) {
	conv := currency.Restore(session.Rate)

	total, err := conv.Convert(session.Breakdown.Total, models.CurrencyMXN, session.DisplayCurrency)
	if err != nil {
		return nil, err
	}
	subtotal, err := conv.Convert(session.Breakdown.Subtotal, models.CurrencyMXN, session.DisplayCurrency)
	if err != nil {
		return nil, err
	}
	fee, err := conv.Convert(session.Breakdown.PlatformFee, models.CurrencyMXN, session.DisplayCurrency)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutQuote{
		SessionID:       session.SessionID,
		Breakdown:       session.Breakdown,
		Currency:        session.DisplayCurrency,
		RateLocked:      session.Rate.Locked,
		EffectiveRate:   conv.EffectiveRate(),
		DisplayTotal:    s.Formatter.Format(total, session.DisplayCurrency, session.DisplayLocale),
		DisplaySubtotal: s.Formatter.Format(subtotal, session.DisplayCurrency, session.DisplayLocale),
		DisplayFee:      s.Formatter.Format(fee, session.DisplayCurrency, session.DisplayLocale),
	}, nil
}
