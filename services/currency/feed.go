package currency

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Feed maintains the process-wide last-known-good MXN-per-USD rate, polled
// from an external endpoint that returns a single float as its body. Fetch
// failures and invalid values leave the previous rate untouched; a slightly
// stale rate is always preferable to blocking checkout.
type Feed struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *zap.Logger

	// Never locked: the feed is shared read-only across sessions, rate
	// locking happens per checkout session.
	conv *Converter
}

// NewFeed returns a feed seeded with defaultRate so pricing display works
// before the first successful fetch.
func NewFeed(url string, defaultRate float64, fetchTimeout time.Duration, logger *zap.Logger) *Feed {
	return &Feed{
		url:     url,
		timeout: fetchTimeout,
		client:  &http.Client{},
		logger:  logger,
		conv:    NewConverter(defaultRate),
	}
}

// Current returns the last-known-good rate.
func (f *Feed) Current() float64 {
	return f.conv.EffectiveRate()
}

// Refresh performs one fetch attempt and applies the result if valid.
func (f *Feed) Refresh(ctx context.Context) error {
	rate, err := f.fetch(ctx)
	if err != nil {
		f.logger.Warn("rate feed refresh failed, keeping previous rate",
			zap.Float64("currentRate", f.Current()), zap.Error(err))
		return err
	}
	f.conv.RefreshLiveRate(rate)
	f.logger.Info("exchange rate refreshed", zap.Float64("mxnPerUsd", rate))
	return nil
}

// Start launches the periodic refresh loop. It performs an immediate
// refresh, then polls at the given interval until ctx is cancelled.
func (f *Feed) Start(ctx context.Context, interval time.Duration) {
	go func() {
		f.Refresh(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.Refresh(ctx)
			}
		}
	}()
}

func (f *Feed) fetch(ctx context.Context) (float64, error) {
	if f.url == "" {
		return 0, fmt.Errorf("no rate source configured")
	}
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("failed to read rate response: %w", err)
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("rate source returned malformed body %q: %w", string(body), err)
	}
	if !ValidRate(rate) {
		return 0, fmt.Errorf("rate source returned invalid rate %v", rate)
	}
	return rate, nil
}
