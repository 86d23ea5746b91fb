package rates

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

var ErrInvalidRate = errors.New("invalid rate")

type ratePersister interface {
	SaveRate(ctx context.Context, code currency.Code, val decimal.Decimal) error
}

// Table is a Provider whose rates can be replaced at runtime.
type Table struct {
	mu        sync.RWMutex
	rates     map[currency.Code]decimal.Decimal
	persister ratePersister
}

// NewTable copies the seed rates. persister may be nil.
func NewTable(seed Provider, persister ratePersister) *Table {
	return &Table{
		rates:     seed.Rates(),
		persister: persister,
	}
}

func (t *Table) Rates() map[currency.Code]decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make(map[currency.Code]decimal.Decimal, len(t.rates))
	for code, val := range t.rates {
		res[code] = val
	}
	return res
}

func (t *Table) UpdateRateValue(ctx context.Context, code currency.Code, val decimal.Decimal) error {
	if !code.Valid() {
		return errors.Wrapf(currency.ErrUnknownCurrency, "update rate %q", string(code))
	}
	if !val.IsPositive() {
		return errors.Wrapf(ErrInvalidRate, "update rate %s to %s", code, val)
	}
	if code == currency.Base && !val.Equal(decimal.NewFromInt(1)) {
		return errors.Wrapf(ErrInvalidRate, "base currency %s is pinned to 1", code)
	}

	if t.persister != nil {
		if err := t.persister.SaveRate(ctx, code, val); err != nil {
			return errors.Wrap(err, "update rate")
		}
	}

	t.mu.Lock()
	t.rates[code] = val
	t.mu.Unlock()
	return nil
}
