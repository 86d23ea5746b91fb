package price

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/model/rates"
)

var tolerance = decimal.New(1, -9)

type fixedRates map[currency.Code]decimal.Decimal

func (r fixedRates) Rates() map[currency.Code]decimal.Decimal {
	return r
}

func Test_Convert_SameCurrencyIsIdentity(t *testing.T) {
	converter := NewConverter(rates.StaticProvider{})
	amounts := []string{"0", "10", "0.005", "123456.789", "-3.3333333333"}

	for _, code := range currency.Codes {
		for _, raw := range amounts {
			x := decimal.RequireFromString(raw)
			got, err := converter.Convert(x, code, code)
			require.NoError(t, err)
			assert.True(t, x.Equal(got), "%s %s", code, raw)
		}
	}
}

func Test_Convert_RoundTripWithinTolerance(t *testing.T) {
	converter := NewConverter(rates.StaticProvider{})
	x := decimal.RequireFromString("10")

	for _, a := range currency.Codes {
		for _, b := range currency.Codes {
			there, err := converter.Convert(x, a, b)
			require.NoError(t, err)
			back, err := converter.Convert(there, b, a)
			require.NoError(t, err)
			assert.True(t, back.Sub(x).Abs().LessThan(tolerance), "%s -> %s -> %s gave %s", a, b, a, back)
		}
	}
}

func Test_Convert_GoesThroughBase(t *testing.T) {
	converter := NewConverter(rates.StaticProvider{})

	got, err := converter.Convert(decimal.NewFromInt(10), currency.USD, currency.INR)
	require.NoError(t, err)
	assert.Equal(t, "830", got.String())

	// 85 EUR -> 100 USD -> 73 GBP
	got, err = converter.Convert(decimal.NewFromInt(85), currency.EUR, currency.GBP)
	require.NoError(t, err)
	assert.Equal(t, "73", got.String())
}

func Test_Convert_UsesInjectedRates(t *testing.T) {
	converter := NewConverter(fixedRates{
		currency.USD: decimal.NewFromInt(1),
		currency.EUR: decimal.NewFromInt(2),
	})

	got, err := converter.Convert(decimal.NewFromInt(3), currency.USD, currency.EUR)
	require.NoError(t, err)
	assert.Equal(t, "6", got.String())

	_, err = converter.Convert(decimal.NewFromInt(3), currency.USD, currency.GBP)
	assert.True(t, errors.Is(err, currency.ErrUnknownCurrency))
}

func Test_Convert_UnknownCurrencyFails(t *testing.T) {
	converter := NewConverter(rates.StaticProvider{})

	_, err := converter.Convert(decimal.NewFromInt(1), "JPY", currency.USD)
	assert.True(t, errors.Is(err, currency.ErrUnknownCurrency))

	_, err = converter.Convert(decimal.NewFromInt(1), currency.USD, "JPY")
	assert.True(t, errors.Is(err, currency.ErrUnknownCurrency))

	_, err = converter.Convert(decimal.NewFromInt(1), "JPY", "JPY")
	assert.True(t, errors.Is(err, currency.ErrUnknownCurrency))
}
