package price

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

const fractionDigits = 2

// Formatter renders money with the en-US convention for every currency:
// symbol first, comma grouping, point decimals, two fraction digits.
type Formatter struct {
	converter *Converter
}

func NewFormatter(converter *Converter) *Formatter {
	return &Formatter{converter: converter}
}

// Format converts a base-currency amount into code and renders it.
func (f *Formatter) Format(amount decimal.Decimal, code currency.Code) (string, error) {
	converted, err := f.converter.Convert(amount, currency.Base, code)
	if err != nil {
		return "", errors.Wrap(err, "format")
	}
	return f.Render(converted, code)
}

// Render formats an amount that is already expressed in code.
func (f *Formatter) Render(amount decimal.Decimal, code currency.Code) (string, error) {
	info, err := currency.Lookup(code)
	if err != nil {
		return "", errors.Wrap(err, "render")
	}

	rounded := amount.Round(fractionDigits)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole).StringFixed(fractionDigits)
	return sign + info.Symbol + humanize.BigComma(whole.BigInt()) + frac[1:], nil
}
