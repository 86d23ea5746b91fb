package storage

import (
	"context"

	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
)

// Storage is the full surface both implementations offer; consumers declare narrower interfaces.
type Storage interface {
	GetUserByID(ctx context.Context, id int64) (user.Record, error)
	SaveUserByID(ctx context.Context, id int64, rec user.Record) error
	AddItem(ctx context.Context, userID int64, item grocery.Item) (int64, error)
	GetUserItems(ctx context.Context, userID int64) ([]grocery.Item, error)
	ToggleItem(ctx context.Context, userID, itemID int64) (grocery.Item, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
	SaveRate(ctx context.Context, code currency.Code, val decimal.Decimal) error
	GetRates(ctx context.Context, base currency.Code, relatives []currency.Code) (map[currency.Code]decimal.Decimal, error)
	Close() error
}

var (
	_ Storage = (*SQLStorage)(nil)
	_ Storage = (*InMemStorage)(nil)
)

func New(config config) (Storage, error) {
	if config.Driver() == DriverMemory {
		return NewInMemStorage(), nil
	}
	return NewSQLStorage(config)
}
