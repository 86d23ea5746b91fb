package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/logger"
)

type ratesStorage interface {
	UpdateRateValue(ctx context.Context, code currency.Code, val decimal.Decimal) error
}

// Fetcher returns rates of relatives against base.
type Fetcher interface {
	GetRates(ctx context.Context, base currency.Code, relatives []currency.Code) (map[currency.Code]decimal.Decimal, error)
}

type config interface {
	PullingDelayMinutes() int64
}

type Puller struct {
	storage      ratesStorage
	fetcher      Fetcher
	pullingDelay time.Duration
}

func NewPuller(storage ratesStorage, fetcher Fetcher, config config) (*Puller, error) {
	p := &Puller{
		storage:      storage,
		fetcher:      fetcher,
		pullingDelay: time.Duration(config.PullingDelayMinutes()) * time.Minute,
	}
	if p.pullingDelay <= 0 {
		return nil, errors.Errorf("pulling delay must be positive, got %s", p.pullingDelay)
	}
	err := p.storage.UpdateRateValue(context.Background(), currency.Base, decimal.NewFromInt(1))
	if err != nil {
		return nil, errors.Wrap(err, "cannot init storage")
	}
	return p, nil
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(p.pullingDelay)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates", zap.Duration("delay", p.pullingDelay))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.PullOnce(ctx)
		case <-ticker.C:
			p.PullOnce(ctx)
		}
	}
}

// PullOnce keeps the previous rates when the fetch fails.
func (p *Puller) PullOnce(ctx context.Context) {
	logger.Info("Pulling current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "pullRates")
	defer span.Finish()

	pulledRates, err := p.fetcher.GetRates(ctx, currency.Base, nonBaseCurrencies())
	if err != nil {
		ext.Error.Set(span, true)
		observePull(false)
		logger.Error("cannot get rates", zap.Error(err))
		return
	}

	for code, rate := range pulledRates {
		p.updateRate(ctx, code, rate)
	}

	observePull(true)
	logger.Info("Successfully pulled current rates", zap.Int("count", len(pulledRates)))
}

func (p *Puller) updateRate(ctx context.Context, code currency.Code, rate decimal.Decimal) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateRate")
	defer span.Finish()
	span.SetTag("rate", code.String())

	err := p.storage.UpdateRateValue(ctx, code, rate)
	if err == nil {
		logger.Info("successfully saved rate", zap.Stringer("rate", code), zap.Stringer("value", rate))
	} else {
		ext.Error.Set(span, true)
		logger.Error("failed to save rate", zap.Error(err), zap.Stringer("rate", code))
	}
}

func nonBaseCurrencies() []currency.Code {
	relatives := make([]currency.Code, 0, len(currency.Codes)-1)
	for _, curr := range currency.Codes {
		if curr != currency.Base {
			relatives = append(relatives, curr)
		}
	}
	return relatives
}
