package currency

import (
	"errors"
	"math"
	"sync"

	"hogarlink/models"
)

// ErrUnsupportedCurrencyPair indicates a conversion outside {USD, MXN} was
// requested. The product domain is fixed to these two currencies, so hitting
// this is a programming error in the caller.
var ErrUnsupportedCurrencyPair = errors.New("unsupported currency pair")

// Converter holds the MXN-per-USD exchange-rate state for one checkout
// session. While unlocked, the live rate is authoritative; locking snapshots
// the live rate so the displayed amount cannot drift between quote and
// payment. Safe for concurrent use.
type Converter struct {
	mu         sync.RWMutex
	liveRate   float64
	locked     bool
	lockedRate float64
}

// NewConverter returns a converter seeded with the given live rate.
func NewConverter(liveRate float64) *Converter {
	return &Converter{liveRate: liveRate}
}

// Restore rebuilds a converter from persisted session state.
func Restore(state models.RateState) *Converter {
	return &Converter{
		liveRate:   state.LiveRate,
		locked:     state.Locked,
		lockedRate: state.LockedRate,
	}
}

// State returns the serializable rate state for session persistence.
func (c *Converter) State() models.RateState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.RateState{
		LiveRate:   c.liveRate,
		Locked:     c.locked,
		LockedRate: c.lockedRate,
	}
}

// RefreshLiveRate replaces the live rate. The upstream feed is untrusted
// input: non-positive or non-finite rates are discarded as a no-op rather
// than corrupting state. Has no effect on the effective rate while locked.
func (c *Converter) RefreshLiveRate(rate float64) {
	if !ValidRate(rate) {
		return
	}
	c.mu.Lock()
	c.liveRate = rate
	c.mu.Unlock()
}

// Lock snapshots the live rate. Idempotent: locking an already-locked
// converter keeps the original snapshot.
func (c *Converter) Lock() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked {
		return
	}
	c.lockedRate = c.liveRate
	c.locked = true
}

// Unlock returns authority to the live rate immediately.
func (c *Converter) Unlock() {
	c.mu.Lock()
	c.locked = false
	c.mu.Unlock()
}

// Locked reports whether the rate is currently frozen.
func (c *Converter) Locked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locked
}

// EffectiveRate returns the locked snapshot if locked, else the live rate.
func (c *Converter) EffectiveRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.locked {
		return c.lockedRate
	}
	return c.liveRate
}

// Convert turns an integer minor-unit amount into a major-unit display value
// in the target currency using the effective rate. Display only: the result
// must never feed back into a charge amount.
func (c *Converter) Convert(amountMinorUnits int64, from, to models.Currency) (float64, error) {
	if !from.Supported() || !to.Supported() {
		return 0, ErrUnsupportedCurrencyPair
	}
	major := float64(amountMinorUnits) / 100
	if from == to {
		return major, nil
	}
	rate := c.EffectiveRate()
	if from == models.CurrencyMXN {
		return major / rate, nil
	}
	return major * rate, nil
}

// ValidRate reports whether r is acceptable as an exchange rate.
func ValidRate(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}
