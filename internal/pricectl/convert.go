package pricectl

import (
	"fmt"

	"github.com/spf13/cobra"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

var flagRaw bool

var convertCmd = &cobra.Command{
	Use:     "convert <amount> <from> <to>",
	Short:   "Convert an amount between currencies",
	Example: "  pricectl convert 10 USD INR",
	Args:    cobra.ExactArgs(3),
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the unrounded number")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	from, err := currency.Parse(args[1])
	if err != nil {
		return err
	}
	to, err := currency.Parse(args[2])
	if err != nil {
		return err
	}

	converter, formatter, err := newFormatter(cmd.Context())
	if err != nil {
		return err
	}
	converted, err := converter.Convert(amount, from, to)
	if err != nil {
		return err
	}

	if flagRaw {
		fmt.Fprintln(cmd.OutOrStdout(), converted.String())
		return nil
	}
	text, err := formatter.Render(converted, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
