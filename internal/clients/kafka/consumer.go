package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, userID int64, curr currency.Code) (*api.Report, error)
}

type reportSender interface {
	SendReport(ctx context.Context, report *api.Report) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	generator     reportGenerator
	sender        reportSender
}

func NewConsumer(cfg consumerConfig, generator reportGenerator, sender reportSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		generator:     generator,
		sender:        sender,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrapf(err, "consume from %s", c.topic)
			}
		}
	}
}

func (c *Consumer) Close() {
	err := c.consumerGroup.Close()
	if err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		req, err := api.UnmarshalRequest(message.Value)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received report request",
				zap.ByteString("key", message.Key),
				zap.Int64("userID", req.UserID),
				zap.String("currency", req.Currency),
			)
			c.processRequest(session.Context(), req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

// processRequest always sends something back so the user is not left waiting.
func (c *Consumer) processRequest(ctx context.Context, req api.ReportRequest) {
	report, err := c.generator.GenerateReport(ctx, req.UserID, currency.Code(req.Currency))
	if err != nil {
		logger.Error("failed to generate report", zap.Error(err), zap.Int64("userID", req.UserID))
	}
	err = c.sender.SendReport(ctx, report)
	if err != nil {
		logger.Error("failed to send report", zap.Error(err))
	}
}
