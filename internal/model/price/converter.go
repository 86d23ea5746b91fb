package price

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/model/rates"
)

type Converter struct {
	provider rates.Provider
}

func NewConverter(provider rates.Provider) *Converter {
	return &Converter{provider: provider}
}

// Convert always goes through the base currency, since rates are only stored relative to it.
func (c *Converter) Convert(amount decimal.Decimal, from, to currency.Code) (decimal.Decimal, error) {
	if from == to {
		if !from.Valid() {
			return decimal.Zero, errors.Wrapf(currency.ErrUnknownCurrency, "convert from %q", string(from))
		}
		return amount, nil
	}

	table := c.provider.Rates()
	fromRate, err := rateOf(table, from)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "convert")
	}
	toRate, err := rateOf(table, to)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "convert")
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

func rateOf(table map[currency.Code]decimal.Decimal, code currency.Code) (decimal.Decimal, error) {
	if !code.Valid() {
		return decimal.Zero, errors.Wrapf(currency.ErrUnknownCurrency, "rate of %q", string(code))
	}
	rate, ok := table[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, errors.Wrapf(currency.ErrUnknownCurrency, "no rate for %s", code)
	}
	return rate, nil
}
