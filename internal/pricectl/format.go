package pricectl

import (
	"fmt"

	"github.com/spf13/cobra"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

var formatCmd = &cobra.Command{
	Use:     "format <amount> <currency>",
	Short:   "Show a USD amount in another currency",
	Example: "  pricectl format 10 EUR",
	Args:    cobra.ExactArgs(2),
	RunE:    runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	code, err := currency.Parse(args[1])
	if err != nil {
		return err
	}

	_, formatter, err := newFormatter(cmd.Context())
	if err != nil {
		return err
	}
	text, err := formatter.Format(amount, code)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
