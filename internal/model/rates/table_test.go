package rates

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

type savedRates map[currency.Code]decimal.Decimal

func (s savedRates) SaveRate(_ context.Context, code currency.Code, val decimal.Decimal) error {
	s[code] = val
	return nil
}

type failingPersister struct{}

func (failingPersister) SaveRate(context.Context, currency.Code, decimal.Decimal) error {
	return errors.New("db is down")
}

func Test_StaticProvider_ShouldServeCurrencyTable(t *testing.T) {
	rates := StaticProvider{}.Rates()
	assert.Len(t, rates, len(currency.Codes))
	assert.Equal(t, "83", rates[currency.INR].String())
	assert.Equal(t, "0.85", rates[currency.EUR].String())
}

func Test_Table_ShouldUpdateAndPersistRate(t *testing.T) {
	saved := savedRates{}
	table := NewTable(StaticProvider{}, saved)

	err := table.UpdateRateValue(context.Background(), currency.EUR, decimal.RequireFromString("0.9"))
	assert.NoError(t, err)
	assert.Equal(t, "0.9", table.Rates()[currency.EUR].String())
	assert.Equal(t, "0.9", saved[currency.EUR].String())
}

func Test_Table_ShouldRejectInvalidUpdates(t *testing.T) {
	ctx := context.Background()
	table := NewTable(StaticProvider{}, nil)

	err := table.UpdateRateValue(ctx, "JPY", decimal.NewFromInt(150))
	assert.True(t, errors.Is(err, currency.ErrUnknownCurrency))

	err = table.UpdateRateValue(ctx, currency.GBP, decimal.Zero)
	assert.True(t, errors.Is(err, ErrInvalidRate))

	err = table.UpdateRateValue(ctx, currency.USD, decimal.NewFromInt(2))
	assert.True(t, errors.Is(err, ErrInvalidRate))

	assert.Equal(t, "0.73", table.Rates()[currency.GBP].String())
}

func Test_Table_ShouldKeepOldRateWhenPersistFails(t *testing.T) {
	table := NewTable(StaticProvider{}, failingPersister{})

	err := table.UpdateRateValue(context.Background(), currency.INR, decimal.NewFromInt(90))
	assert.Error(t, err)
	assert.Equal(t, "83", table.Rates()[currency.INR].String())
}

func Test_Table_RatesReturnsCopy(t *testing.T) {
	table := NewTable(StaticProvider{}, nil)
	snapshot := table.Rates()
	snapshot[currency.EUR] = decimal.NewFromInt(5)

	assert.Equal(t, "0.85", table.Rates()[currency.EUR].String())
}
