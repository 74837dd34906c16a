package currency

import (
	"fmt"

	"hogarlink/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders display amounts with locale-aware grouping and decimal
// conventions. The output shape is "symbol+number space ISO-code"
// ("$977.50 USD"): double currency marking is intentional for a cross-border
// product where "$" alone is ambiguous.
type Formatter interface {
	Format(amount float64, currency models.Currency, locale models.Locale) string
}

// LocaleFormatter implements Formatter for the product's two locales.
type LocaleFormatter struct{}

var localeTags = map[models.Locale]language.Tag{
	models.LocaleEnUS: language.AmericanEnglish,
	models.LocaleEsMX: language.MustParse("es-MX"),
}

// Format renders amount with two fraction digits in the given locale,
// falling back to en-US for unknown locales.
func (LocaleFormatter) Format(amount float64, currency models.Currency, locale models.Locale) string {
	tag, ok := localeTags[locale]
	if !ok {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	n := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return fmt.Sprintf("$%s %s", n, currency)
}
