package reports

import (
	"context"
	"sort"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
	"max.ks1230/grocery-bot/internal/logger"
	"max.ks1230/grocery-bot/internal/model/budget"
)

type itemsStorage interface {
	GetUserByID(ctx context.Context, userID int64) (user.Record, error)
	GetUserItems(ctx context.Context, userID int64) ([]grocery.Item, error)
}

type moneyFormatter interface {
	Format(amount decimal.Decimal, code currency.Code) (string, error)
}

type config interface {
	DefaultCurrency() currency.Code
}

type Generator struct {
	storage         itemsStorage
	formatter       moneyFormatter
	defaultCurrency currency.Code
}

func NewGenerator(config config, storage itemsStorage, formatter moneyFormatter) *Generator {
	return &Generator{
		storage:         storage,
		formatter:       formatter,
		defaultCurrency: config.DefaultCurrency(),
	}
}

// GenerateReport never returns a nil report; failures are reported in its status.
// An empty curr falls back to the user's preferred currency.
func (g *Generator) GenerateReport(ctx context.Context, userID int64, curr currency.Code) (report *api.Report, err error) {
	logger.Info("GenerateReport - start", zap.Int64("userID", userID), zap.Stringer("currency", curr))
	defer logger.Info("GenerateReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	defer func() {
		if report == nil {
			report = &api.Report{}
		}
		report.Success = err == nil
		if err != nil {
			report.Error = err.Error()
		}
		report.UserID = userID
	}()

	if curr == "" {
		userRec, err := g.storage.GetUserByID(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "generate report")
		}
		curr = userRec.PreferredCurrencyOrDefault(g.defaultCurrency)
	}
	if !curr.Valid() {
		return nil, errors.Wrapf(currency.ErrUnknownCurrency, "generate report in %q", curr.String())
	}

	items, err := g.storage.GetUserItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	report, err = g.build(items, curr)
	return report, errors.Wrap(err, "generate report")
}

func (g *Generator) build(items []grocery.Item, curr currency.Code) (*api.Report, error) {
	summary := budget.Summarize(items)
	report := &api.Report{
		Currency:          curr.String(),
		TotalItems:        int64(summary.TotalItems),
		PurchasedItems:    int64(summary.PurchasedItems),
		CompletionPercent: int64(summary.CompletionPercent()),
	}

	var err error
	for _, field := range []struct {
		dst *string
		val decimal.Decimal
	}{
		{&report.TotalCost, summary.TotalCost},
		{&report.PurchasedCost, summary.PurchasedCost},
		{&report.RemainingCost, summary.RemainingCost},
	} {
		*field.dst, err = g.formatter.Format(field.val, curr)
		if err != nil {
			return nil, err
		}
	}

	lines, err := g.categoryLines(budget.ByCategory(items), curr)
	if err != nil {
		return nil, err
	}
	report.Categories = lines
	return report, nil
}

// categoryLines orders categories by remaining cost, largest first.
func (g *Generator) categoryLines(byCategory map[grocery.Category]decimal.Decimal, curr currency.Code) ([]api.CategoryLine, error) {
	type entry struct {
		category grocery.Category
		amount   decimal.Decimal
	}
	entries := make([]entry, 0, len(byCategory))
	for cat, amount := range byCategory {
		entries = append(entries, entry{cat, amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].amount.Equal(entries[j].amount) {
			return entries[i].amount.GreaterThan(entries[j].amount)
		}
		return entries[i].category < entries[j].category
	})

	lines := make([]api.CategoryLine, 0, len(entries))
	for _, e := range entries {
		text, err := g.formatter.Format(e.amount, curr)
		if err != nil {
			return nil, err
		}
		lines = append(lines, api.CategoryLine{Category: string(e.category), Remaining: text})
	}
	return lines, nil
}
