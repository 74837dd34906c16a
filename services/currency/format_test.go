package currency

import (
	"testing"

	"hogarlink/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatEnUS(t *testing.T) {
	f := LocaleFormatter{}

	assert.Equal(t, "$977.50 USD", f.Format(977.5, models.CurrencyUSD, models.LocaleEnUS))
	assert.Equal(t, "$2,345.00 MXN", f.Format(2345, models.CurrencyMXN, models.LocaleEnUS))
}

func TestFormatEsMX(t *testing.T) {
	f := LocaleFormatter{}

	assert.Equal(t, "$2,345.00 MXN", f.Format(2345, models.CurrencyMXN, models.LocaleEsMX))
	assert.Equal(t, "$977.50 MXN", f.Format(977.5, models.CurrencyMXN, models.LocaleEsMX))
}

func TestFormatGroupsLargeAmounts(t *testing.T) {
	f := LocaleFormatter{}

	assert.Equal(t, "$12,345.67 USD", f.Format(12345.67, models.CurrencyUSD, models.LocaleEnUS))
}

func TestFormatUnknownLocaleFallsBack(t *testing.T) {
	f := LocaleFormatter{}

	assert.Equal(t, "$977.50 USD", f.Format(977.5, models.CurrencyUSD, models.Locale("fr-FR")))
}
