package kafka

import (
	"context"
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	api "max.ks1230/grocery-bot/api/reports"
	"max.ks1230/grocery-bot/internal/entity/currency"
	"max.ks1230/grocery-bot/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create kafka producer")
	}
	return &Producer{
		producer: producer,
		topic:    cfg.ReportsTopic(),
	}, nil
}

// RequestReport keys messages by user so one user's requests stay ordered.
func (p *Producer) RequestReport(ctx context.Context, userID int64, curr currency.Code) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "requestReport")
	defer span.Finish()

	message, err := api.MarshalRequest(api.ReportRequest{UserID: userID, Currency: curr.String()})
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(userID, 10)),
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return errors.Wrap(err, "produce report request")
	}
	logger.Info("report requested",
		zap.Int64("userID", userID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
