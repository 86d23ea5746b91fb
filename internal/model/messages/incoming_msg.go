package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/logger"
	"max.ks1230/grocery-bot/internal/model/price"
)

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

// Deps are the collaborators of the command handlers. Cache and Requester are optional.
type Deps struct {
	Storage   itemsStorage
	Converter *price.Converter
	Cache     budgetCache
	Requester reportRequester
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, deps Deps, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(deps, config),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}

// AcceptReport delivers a report produced by the reporter to its user.
func (s *Service) AcceptReport(ctx context.Context, report *api.Report) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "acceptReport")
	defer span.Finish()

	logger.Info("report accepted", zap.Int64("userID", report.UserID), zap.Bool("success", report.Success))
	err := s.tgClient.SendMessage(formatReport(report), report.UserID)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "accept report")
	}
	return nil
}
