package pricectl

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/model/budget"
)

var flagCurrency string

var summaryCmd = &cobra.Command{
	Use:   "summary <items.toml>",
	Short: "Budget summary of a grocery list file",
	Long: "Reads [[item]] tables with name, price (USD), quantity, category and\n" +
		"purchased keys and prints the budget in the chosen currency.",
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagCurrency, "currency", "c", string(currency.Base), "Display currency")
	rootCmd.AddCommand(summaryCmd)
}

type itemsFile struct {
	Items []struct {
		Name      string  `toml:"name"`
		Price     float64 `toml:"price"`
		Quantity  int     `toml:"quantity"`
		Category  string  `toml:"category"`
		Purchased bool    `toml:"purchased"`
	} `toml:"item"`
}

func loadItems(path string) ([]grocery.Item, error) {
	var file itemsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrap(err, "reading items file")
	}

	items := make([]grocery.Item, 0, len(file.Items))
	for i, raw := range file.Items {
		item := grocery.Item{
			ID:        int64(i + 1),
			Name:      raw.Name,
			Quantity:  raw.Quantity,
			Price:     decimal.NewFromFloat(raw.Price),
			Category:  grocery.ParseCategory(raw.Category),
			Purchased: raw.Purchased,
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		if err := item.Validate(); err != nil {
			return nil, errors.Wrapf(err, "item %d", i+1)
		}
		items = append(items, item)
	}
	return items, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	code, err := currency.Parse(flagCurrency)
	if err != nil {
		return err
	}
	items, err := loadItems(args[0])
	if err != nil {
		return err
	}
	_, formatter, err := newFormatter(cmd.Context())
	if err != nil {
		return err
	}

	summary := budget.Summarize(items)
	money := make([]string, 0, 3)
	for _, val := range []decimal.Decimal{summary.TotalCost, summary.PurchasedCost, summary.RemainingCost} {
		text, err := formatter.Format(val, code)
		if err != nil {
			return err
		}
		money = append(money, text)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Items:     %d/%d purchased (%d%%)\n", summary.PurchasedItems, summary.TotalItems, summary.CompletionPercent())
	fmt.Fprintf(out, "Total:     %s\n", money[0])
	fmt.Fprintf(out, "Purchased: %s\n", money[1])
	fmt.Fprintf(out, "Remaining: %s\n", money[2])

	byCategory := budget.ByCategory(items)
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)
	for _, cat := range categories {
		text, err := formatter.Format(byCategory[grocery.Category(cat)], code)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s %s\n", cat, text)
	}
	return nil
}
