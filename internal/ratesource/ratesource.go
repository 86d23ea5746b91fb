// Package ratesource picks where live exchange rates come from.
package ratesource

import (
	"github.com/pkg/errors"
	"max.ks1230/grocery-bot/internal/clients/fixer"
	"max.ks1230/grocery-bot/internal/config"
	"max.ks1230/grocery-bot/internal/model/rates"
	"max.ks1230/grocery-bot/internal/model/storage"
)

// New returns a table seeded with the static rates. The puller is nil for
// the static source. Rates pulled from fixer are persisted to db so other
// processes can read them with the stored source.
func New(conf *config.Service, db storage.Storage) (*rates.Table, *rates.Puller, error) {
	var (
		table   *rates.Table
		fetcher rates.Fetcher
	)
	switch conf.App().RatesSource() {
	case config.RatesSourceFixer:
		table = rates.NewTable(rates.StaticProvider{}, db)
		fetcher = fixer.New(conf.Fixer())
	case config.RatesSourceStored:
		table = rates.NewTable(rates.StaticProvider{}, nil)
		fetcher = db
	default:
		return rates.NewTable(rates.StaticProvider{}, nil), nil, nil
	}

	puller, err := rates.NewPuller(table, fetcher, conf.App())
	if err != nil {
		return nil, nil, errors.Wrap(err, "init rates puller")
	}
	return table, puller, nil
}
