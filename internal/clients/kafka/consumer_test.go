package kafka

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
)

type generatorFunc func(ctx context.Context, userID int64, curr currency.Code) (*api.Report, error)

func (f generatorFunc) GenerateReport(ctx context.Context, userID int64, curr currency.Code) (*api.Report, error) {
	return f(ctx, userID, curr)
}

type recordingSender struct {
	sent []*api.Report
}

func (s *recordingSender) SendReport(_ context.Context, report *api.Report) error {
	s.sent = append(s.sent, report)
	return nil
}

func Test_ProcessRequest_ShouldSendGeneratedReport(t *testing.T) {
	sender := &recordingSender{}
	c := &Consumer{
		generator: generatorFunc(func(_ context.Context, userID int64, curr currency.Code) (*api.Report, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, currency.EUR, curr)
			return &api.Report{UserID: userID, Currency: curr.String(), Success: true}, nil
		}),
		sender: sender,
	}

	c.processRequest(context.Background(), api.ReportRequest{UserID: 7, Currency: "EUR"})

	if assert.Len(t, sender.sent, 1) {
		assert.True(t, sender.sent[0].Success)
	}
}

func Test_ProcessRequest_ShouldSendFailedReport(t *testing.T) {
	sender := &recordingSender{}
	c := &Consumer{
		generator: generatorFunc(func(_ context.Context, userID int64, _ currency.Code) (*api.Report, error) {
			return &api.Report{UserID: userID, Error: "unknown currency"}, errors.New("unknown currency")
		}),
		sender: sender,
	}

	c.processRequest(context.Background(), api.ReportRequest{UserID: 7, Currency: "JPY"})

	if assert.Len(t, sender.sent, 1) {
		assert.False(t, sender.sent[0].Success)
		assert.Equal(t, "unknown currency", sender.sent[0].Error)
	}
}
