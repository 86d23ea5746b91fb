package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/grocery-bot/internal/clients/kafka"
	"max.ks1230/grocery-bot/internal/config"
	"max.ks1230/grocery-bot/internal/logger"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/reports"
	"max.ks1230/grocery-bot/internal/model/storage"
	"max.ks1230/grocery-bot/internal/ratesource"
	"max.ks1230/grocery-bot/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}
	if !conf.Kafka().Enabled() {
		logger.Fatal("kafka brokers are not configured")
	}

	tracer, err := tracing.Init(conf.Jaeger(), "grocery-reporter")
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	db, err := storage.New(conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer db.Close()

	ratesTable, puller, err := ratesource.New(conf, db)
	if err != nil {
		logger.Fatal("failed to init rates:", zap.Error(err))
	}

	formatter := price.NewFormatter(price.NewConverter(ratesTable))
	reportGenerator := reports.NewGenerator(conf.App(), db, formatter)

	sender, err := reports.NewSender(conf.App().AcceptorAddr())
	if err != nil {
		logger.Fatal("failed to init report sender:", zap.Error(err))
	}
	defer sender.Close()

	consumer, err := kafka.NewConsumer(conf.Kafka(), reportGenerator, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if puller != nil {
		g.Go(func() error {
			puller.Pull(ctx)
			return nil
		})
	}
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
	logger.Info("Reporter stopped")
}
