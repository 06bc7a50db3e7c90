// Package money renders amounts for the dashboard: a fixed-precision,
// locale-grouped number suffixed with the currency code, e.g. "1,250,000 RWF".
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidAmount is returned for NaN or infinite amounts. The analytics
// core guarantees it never produces these for finite inputs, so hitting this
// means a caller passed an unguarded division result through.
var ErrInvalidAmount = errors.New("invalid money amount")

// Formatter renders currency strings for one display locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a Formatter for the given locale tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders the amount with the default precision of 0 decimal digits.
func (f *Formatter) Format(amount float64, code string) (string, error) {
	return f.FormatPrecision(amount, code, 0)
}

// FormatPrecision renders the amount rounded to the given number of decimal
// digits, grouped per the formatter's locale and suffixed with the currency
// code.
func (f *Formatter) FormatPrecision(amount float64, code string, decimals int) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if decimals < 0 {
		decimals = 0
	}
	rounded := decimal.NewFromFloat(amount).Round(int32(decimals))
	formatted := f.printer.Sprint(number.Decimal(
		rounded.InexactFloat64(),
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
	return fmt.Sprintf("%s %s", formatted, code), nil
}
