// Package pricectl is the command line front of the price core.
package pricectl

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/rates"
)

var flagRates string

var rootCmd = &cobra.Command{
	Use:          "pricectl",
	Short:        "Grocery price toolkit",
	Long:         "Convert and format prices, and summarize grocery lists offline.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRates, "rates", "r", "", "TOML file overriding the built-in rates")
}

type ratesFile struct {
	Rates map[string]float64 `toml:"rates"`
}

// loadRates applies overrides on top of the built-in table.
func loadRates(ctx context.Context) (*rates.Table, error) {
	table := rates.NewTable(rates.StaticProvider{}, nil)
	if flagRates == "" {
		return table, nil
	}

	var file ratesFile
	if _, err := toml.DecodeFile(flagRates, &file); err != nil {
		return nil, errors.Wrap(err, "reading rates file")
	}
	for name, val := range file.Rates {
		code, err := currency.Parse(name)
		if err != nil {
			return nil, errors.Wrap(err, "reading rates file")
		}
		if err = table.UpdateRateValue(ctx, code, decimal.NewFromFloat(val)); err != nil {
			return nil, errors.Wrap(err, "reading rates file")
		}
	}
	return table, nil
}

func newFormatter(ctx context.Context) (*price.Converter, *price.Formatter, error) {
	table, err := loadRates(ctx)
	if err != nil {
		return nil, nil, err
	}
	converter := price.NewConverter(table)
	return converter, price.NewFormatter(converter), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	return amount, errors.Wrapf(err, "invalid amount %q", s)
}
