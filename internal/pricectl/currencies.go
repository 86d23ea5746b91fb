package pricectl

import (
	"fmt"

	"github.com/spf13/cobra"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported currencies and their rates",
	Args:  cobra.NoArgs,
	RunE:  runCurrencies,
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}

func runCurrencies(cmd *cobra.Command, _ []string) error {
	table, err := loadRates(cmd.Context())
	if err != nil {
		return err
	}
	current := table.Rates()

	out := cmd.OutOrStdout()
	for _, code := range currency.Codes {
		info, err := currency.Lookup(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-4s %-2s %-14s %s\n", info.Code, info.Symbol, info.Name, current[code].String())
	}
	return nil
}
