package cache

import "max.ks1230/grocery-bot/internal/entity/currency"

// Nop is used when memcached is not configured.
type Nop struct{}

func (Nop) CacheBudget(int64, currency.Code, string) error {
	return nil
}

func (Nop) GetBudget(int64, currency.Code) (string, error) {
	return "", ErrMiss
}

func (Nop) InvalidateBudget(int64) error {
	return nil
}
