package currency

import (
	"math"
	"testing"

	"hogarlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockFreezesRate(t *testing.T) {
	c := NewConverter(17.0)

	c.Lock()
	assert.Equal(t, 17.0, c.EffectiveRate())

	c.RefreshLiveRate(18.5)
	assert.Equal(t, 17.0, c.EffectiveRate(), "locked rate must ignore live updates")

	c.Unlock()
	assert.Equal(t, 18.5, c.EffectiveRate(), "unlock resumes live rate without re-fetch")
}

func TestLockIsIdempotent(t *testing.T) {
	c := NewConverter(17.0)

	c.Lock()
	c.RefreshLiveRate(20.0)
	c.Lock()

	assert.Equal(t, 17.0, c.EffectiveRate(), "second lock must not re-snapshot")
}

func TestRefreshRejectsInvalidRates(t *testing.T) {
	c := NewConverter(17.0)

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		c.RefreshLiveRate(bad)
		assert.Equal(t, 17.0, c.EffectiveRate(), "rate %v must be discarded", bad)
	}
}

func TestConvertSameCurrencyReturnsMajorUnits(t *testing.T) {
	c := NewConverter(17.0)

	got, err := c.Convert(97750, models.CurrencyMXN, models.CurrencyMXN)
	require.NoError(t, err)
	assert.Equal(t, 977.50, got)
}

func TestConvertAcrossCurrencies(t *testing.T) {
	c := NewConverter(17.0)

	usd, err := c.Convert(85000, models.CurrencyMXN, models.CurrencyUSD)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, usd, 1e-9)

	mxn, err := c.Convert(5000, models.CurrencyUSD, models.CurrencyMXN)
	require.NoError(t, err)
	assert.InDelta(t, 850.0, mxn, 1e-9)
}

func TestConvertRoundTrip(t *testing.T) {
	c := NewConverter(17.45)

	usd, err := c.Convert(97750, models.CurrencyMXN, models.CurrencyUSD)
	require.NoError(t, err)

	back := usd * c.EffectiveRate()
	assert.InDelta(t, 977.50, back, 1e-9)
}

func TestConvertRejectsUnsupportedPair(t *testing.T) {
	c := NewConverter(17.0)

	_, err := c.Convert(100, models.Currency("EUR"), models.CurrencyUSD)
	assert.ErrorIs(t, err, ErrUnsupportedCurrencyPair)

	_, err = c.Convert(100, models.CurrencyMXN, models.Currency("CAD"))
	assert.ErrorIs(t, err, ErrUnsupportedCurrencyPair)
}

func TestStateRoundTrip(t *testing.T) {
	c := NewConverter(17.0)
	c.Lock()
	c.RefreshLiveRate(18.5)

	restored := Restore(c.State())

	assert.True(t, restored.Locked())
	assert.Equal(t, 17.0, restored.EffectiveRate())

	restored.Unlock()
	assert.Equal(t, 18.5, restored.EffectiveRate())
}
