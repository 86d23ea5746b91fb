package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
)

type testConfig struct {
	driver string
	path   string
}

func (c testConfig) Driver() string   { return c.driver }
func (c testConfig) Host() string     { return "" }
func (c testConfig) Username() string { return "" }
func (c testConfig) Password() string { return "" }
func (c testConfig) Database() string { return "" }
func (c testConfig) Path() string     { return c.path }

func storages(t *testing.T) map[string]Storage {
	sqlite, err := New(testConfig{driver: DriverSQLite, path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	memory, err := New(testConfig{driver: DriverMemory})
	require.NoError(t, err)

	return map[string]Storage{"sqlite": sqlite, "memory": memory}
}

func TestStorage_Users(t *testing.T) {
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			rec, err := s.GetUserByID(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, currency.Code(""), rec.PreferredCurrency())

			rec.FullName = "Ann"
			rec.BirthDay, rec.BirthMonth = 3, 7
			rec.SetPreferredCurrency(currency.EUR)
			require.NoError(t, s.SaveUserByID(ctx, 42, rec))

			rec.SetPreferredCurrency(currency.INR)
			require.NoError(t, s.SaveUserByID(ctx, 42, rec))

			got, err := s.GetUserByID(ctx, 42)
			require.NoError(t, err)
			assert.Equal(t, "Ann", got.FullName)
			assert.Equal(t, currency.INR, got.PreferredCurrency())
			assert.Equal(t, 3, got.BirthDay)
			assert.Equal(t, 7, got.BirthMonth)
		})
	}
}

func TestStorage_Items(t *testing.T) {
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			milkID, err := s.AddItem(ctx, 1, grocery.Item{
				Name: "Milk", Quantity: 2, Price: decimal.RequireFromString("1.19"), Category: grocery.Dairy,
			})
			require.NoError(t, err)
			breadID, err := s.AddItem(ctx, 1, grocery.Item{
				Name: "Bread", Quantity: 1, Price: decimal.RequireFromString("2.5"), Category: grocery.Other,
			})
			require.NoError(t, err)
			_, err = s.AddItem(ctx, 2, grocery.Item{Name: "Tea", Quantity: 1, Price: decimal.NewFromInt(3)})
			require.NoError(t, err)

			_, err = s.AddItem(ctx, 1, grocery.Item{Name: "Bad", Quantity: 0})
			assert.True(t, errors.Is(err, grocery.ErrInvalidItem))

			items, err := s.GetUserItems(ctx, 1)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, "Milk", items[0].Name)
			assert.Equal(t, "1.19", items[0].Price.String())
			assert.Equal(t, grocery.Dairy, items[0].Category)
			assert.False(t, items[0].Purchased)

			toggled, err := s.ToggleItem(ctx, 1, milkID)
			require.NoError(t, err)
			assert.True(t, toggled.Purchased)

			toggled, err = s.ToggleItem(ctx, 1, milkID)
			require.NoError(t, err)
			assert.False(t, toggled.Purchased)

			_, err = s.ToggleItem(ctx, 2, milkID)
			assert.True(t, errors.Is(err, ErrNotFound))

			require.NoError(t, s.RemoveItem(ctx, 1, breadID))
			assert.True(t, errors.Is(s.RemoveItem(ctx, 1, breadID), ErrNotFound))

			items, err = s.GetUserItems(ctx, 1)
			require.NoError(t, err)
			assert.Len(t, items, 1)
		})
	}
}

func TestStorage_Rates(t *testing.T) {
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.SaveRate(ctx, currency.EUR, decimal.RequireFromString("0.85")))
			require.NoError(t, s.SaveRate(ctx, currency.EUR, decimal.RequireFromString("0.91")))

			got, err := s.GetRates(ctx, currency.USD, []currency.Code{currency.EUR, currency.GBP})
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Equal(t, "0.91", got[currency.EUR].String())

			_, err = s.GetRates(ctx, currency.EUR, []currency.Code{currency.GBP})
			assert.Error(t, err)
		})
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(testConfig{driver: "mysql"})
	assert.Error(t, err)
}

