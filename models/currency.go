package models

// Currency identifies one of the two currencies the product operates in.
// Catalog prices and charges are always MXN; USD exists for display only.
type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"
)

// Supported reports whether c is one of the product's two currencies.
func (c Currency) Supported() bool {
	return c == CurrencyMXN || c == CurrencyUSD
}

// Locale is a BCP 47 tag for display formatting (e.g. "en-US", "es-MX").
type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleEsMX Locale = "es-MX"
)
