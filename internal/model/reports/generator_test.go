package reports

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/rates"
	"max.ks1230/grocery-bot/internal/model/reports/mock"
)

func groceries() []grocery.Item {
	return []grocery.Item{
		{ID: 1, Name: "Apples", Quantity: 2, Price: decimal.NewFromInt(3), Category: grocery.Produce, Purchased: true},
		{ID: 2, Name: "Milk", Quantity: 1, Price: decimal.RequireFromString("1.5"), Category: grocery.Dairy},
		{ID: 3, Name: "Carrots", Quantity: 4, Price: decimal.NewFromInt(1), Category: grocery.Produce},
	}
}

func newFormatter() *price.Formatter {
	return price.NewFormatter(price.NewConverter(rates.StaticProvider{}))
}

func Test_OnGenerateReport_ShouldUsePreferredCurrency(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewItemsStorageMock(m)

	cfg.DefaultCurrencyMock.Return(currency.USD)

	u := user.Record{}
	u.SetPreferredCurrency(currency.EUR)
	storage.
		GetUserByIDMock.
		Inspect(func(_ context.Context, userID int64) {
			assert.Equal(m, int64(123), userID)
		}).
		Return(u, nil).
		GetUserItemsMock.
		Inspect(func(_ context.Context, userID int64) {
			assert.Equal(m, int64(123), userID)
		}).
		Return(groceries(), nil)

	generator := NewGenerator(cfg, storage, newFormatter())
	report, err := generator.GenerateReport(ctx, 123, "")
	assert.NoError(m, err)
	assert.True(m, report.Success)
	assert.Equal(m, int64(123), report.UserID)
	assert.Equal(m, "EUR", report.Currency)
	assert.Equal(m, int64(3), report.TotalItems)
	assert.Equal(m, int64(1), report.PurchasedItems)
	assert.Equal(m, int64(33), report.CompletionPercent)
	assert.Equal(m, "€9.78", report.TotalCost)
	assert.Equal(m, "€5.10", report.PurchasedCost)
	assert.Equal(m, "€4.68", report.RemainingCost)
	assert.Equal(m, []api.CategoryLine{
		{Category: "produce", Remaining: "€3.40"},
		{Category: "dairy", Remaining: "€1.28"},
	}, report.Categories)
}

func Test_OnGenerateReport_ShouldUseExplicitCurrency(t *testing.T) {
	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewItemsStorageMock(m)

	cfg.DefaultCurrencyMock.Return(currency.USD)
	storage.GetUserItemsMock.Return(groceries(), nil)

	report, err := NewGenerator(cfg, storage, newFormatter()).GenerateReport(context.Background(), 5, currency.INR)
	assert.NoError(m, err)
	assert.Equal(m, "INR", report.Currency)
	assert.Equal(m, "₹954.50", report.TotalCost)
}

func Test_OnGenerateReport_ShouldReportEmptyList(t *testing.T) {
	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewItemsStorageMock(m)

	cfg.DefaultCurrencyMock.Return(currency.USD)
	storage.
		GetUserByIDMock.Return(user.Record{}, nil).
		GetUserItemsMock.Return(nil, nil)

	report, err := NewGenerator(cfg, storage, newFormatter()).GenerateReport(context.Background(), 5, "")
	assert.NoError(m, err)
	assert.Equal(m, "USD", report.Currency)
	assert.Equal(m, int64(0), report.CompletionPercent)
	assert.Equal(m, "$0.00", report.RemainingCost)
	assert.Empty(m, report.Categories)
}

func Test_OnGenerateReport_ShouldFailOnUnknownCurrency(t *testing.T) {
	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewItemsStorageMock(m)

	cfg.DefaultCurrencyMock.Return(currency.USD)

	report, err := NewGenerator(cfg, storage, newFormatter()).GenerateReport(context.Background(), 5, "JPY")
	assert.True(m, errors.Is(err, currency.ErrUnknownCurrency))
	assert.NotNil(m, report)
	assert.False(m, report.Success)
	assert.Equal(m, int64(5), report.UserID)
	assert.NotEmpty(m, report.Error)
}

func Test_OnGenerateReport_ShouldFailOnStorageError(t *testing.T) {
	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewItemsStorageMock(m)

	cfg.DefaultCurrencyMock.Return(currency.USD)
	storage.GetUserItemsMock.Return(nil, errors.New("db is down"))

	report, err := NewGenerator(cfg, storage, newFormatter()).GenerateReport(context.Background(), 5, currency.GBP)
	assert.Error(m, err)
	assert.False(m, report.Success)
}
