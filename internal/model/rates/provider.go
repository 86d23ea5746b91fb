package rates

import (
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

// Provider exposes exchange rates as units per one base-currency unit.
type Provider interface {
	Rates() map[currency.Code]decimal.Decimal
}

// StaticProvider serves the built-in currency table.
type StaticProvider struct{}

func (StaticProvider) Rates() map[currency.Code]decimal.Decimal {
	res := make(map[currency.Code]decimal.Decimal, len(currency.Codes))
	for _, code := range currency.Codes {
		info, _ := currency.Lookup(code)
		res[code] = info.ExchangeRate
	}
	return res
}
