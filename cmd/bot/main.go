package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/grocery-bot/internal/clients/cache"
	"max.ks1230/grocery-bot/internal/clients/kafka"
	"max.ks1230/grocery-bot/internal/clients/tg"
	"max.ks1230/grocery-bot/internal/config"
	"max.ks1230/grocery-bot/internal/logger"
	"max.ks1230/grocery-bot/internal/model/messages"
	"max.ks1230/grocery-bot/internal/model/price"
	"max.ks1230/grocery-bot/internal/model/reports"
	"max.ks1230/grocery-bot/internal/model/storage"
	"max.ks1230/grocery-bot/internal/ratesource"
	"max.ks1230/grocery-bot/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Jaeger(), "grocery-bot")
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

	deps := messages.Deps{
		Storage:   db,
		Converter: price.NewConverter(ratesTable),
	}
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		deps.Cache = mc
	}
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		deps.Requester = producer
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}
	msgService := messages.NewService(client, deps, conf.App())

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})

	if puller != nil {
		g.Go(func() error {
			puller.Pull(ctx)
			return nil
		})
	}

	if conf.App().Port() > 0 {
		acceptor, err := reports.NewServer(conf.App().Port(), msgService)
		if err != nil {
			logger.Fatal("failed to init report acceptor:", zap.Error(err))
		}
		g.Go(acceptor.Serve)
		g.Go(func() error {
			<-ctx.Done()
			acceptor.Shutdown()
			return nil
		})
	}

	if addr := conf.App().MetricsAddr(); addr != "" {
		serveMetrics(ctx, g, addr)
	}

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func serveMetrics(ctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
