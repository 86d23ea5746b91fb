package storage

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/entity/grocery"
	"max.ks1230/grocery-bot/internal/entity/user"
)

type InMemStorage struct {
	mu      sync.Mutex
	userMap map[int64]user.Record
	itemMap map[int64][]grocery.Item
	rates   map[currency.Code]decimal.Decimal
	lastID  int64
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		userMap: make(map[int64]user.Record),
		itemMap: make(map[int64][]grocery.Item),
		rates:   make(map[currency.Code]decimal.Decimal),
	}
}

func (s *InMemStorage) Close() error {
	return nil
}

func (s *InMemStorage) GetUserByID(_ context.Context, id int64) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userMap[id], nil
}

func (s *InMemStorage) SaveUserByID(_ context.Context, id int64, rec user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMap[id] = rec
	return nil
}

func (s *InMemStorage) AddItem(_ context.Context, userID int64, item grocery.Item) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, errors.Wrap(err, "add item")
	}
	if item.Created.IsZero() {
		item.Created = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	item.ID = s.lastID
	s.itemMap[userID] = append(s.itemMap[userID], item)
	return item.ID, nil
}

func (s *InMemStorage) GetUserItems(_ context.Context, userID int64) ([]grocery.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]grocery.Item, len(s.itemMap[userID]))
	copy(res, s.itemMap[userID])
	return res, nil
}

func (s *InMemStorage) ToggleItem(_ context.Context, userID, itemID int64) (grocery.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.itemMap[userID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].Purchased = !items[i].Purchased
			return items[i], nil
		}
	}
	return grocery.Item{}, errors.Wrapf(ErrNotFound, "toggle item %d", itemID)
}

func (s *InMemStorage) RemoveItem(_ context.Context, userID, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.itemMap[userID]
	for i := range items {
		if items[i].ID == itemID {
			s.itemMap[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "remove item %d", itemID)
}

func (s *InMemStorage) SaveRate(_ context.Context, code currency.Code, val decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[code] = val
	return nil
}

func (s *InMemStorage) GetRates(_ context.Context, base currency.Code, relatives []currency.Code) (map[currency.Code]decimal.Decimal, error) {
	if base != currency.Base {
		return nil, errors.Errorf("stored rates are relative to %s, not %s", currency.Base, base)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[currency.Code]decimal.Decimal, len(relatives))
	for _, code := range relatives {
		if val, ok := s.rates[code]; ok {
			res[code] = val
		}
	}
	return res, nil
}
