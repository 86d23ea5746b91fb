package ratesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/grocery-bot/internal/config"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/model/storage"
)

func loadConfig(t *testing.T, source string) *config.Service {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "app:\n  rates-source: " + source + "\n  rate-pulling-delay-minutes: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	conf, err := config.NewFromFile(path)
	require.NoError(t, err)
	return conf
}

func Test_New_StaticSourceHasNoPuller(t *testing.T) {
	table, puller, err := New(loadConfig(t, config.RatesSourceStatic), storage.NewInMemStorage())
	require.NoError(t, err)
	assert.Nil(t, puller)
	assert.Equal(t, "83", table.Rates()[currency.INR].String())
}

func Test_New_StoredSourceReadsDatabase(t *testing.T) {
	ctx := context.Background()
	db := storage.NewInMemStorage()
	require.NoError(t, db.SaveRate(ctx, currency.EUR, decimal.RequireFromString("0.9")))

	table, puller, err := New(loadConfig(t, config.RatesSourceStored), db)
	require.NoError(t, err)
	require.NotNil(t, puller)

	puller.PullOnce(ctx)
	assert.Equal(t, "0.9", table.Rates()[currency.EUR].String())
	assert.Equal(t, "0.73", table.Rates()[currency.GBP].String())
}

func Test_New_FixerSourceCreatesPuller(t *testing.T) {
	_, puller, err := New(loadConfig(t, config.RatesSourceFixer), storage.NewInMemStorage())
	require.NoError(t, err)
	assert.NotNil(t, puller)
}
