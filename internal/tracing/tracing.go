package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/grocery-bot/internal/logger"
)

type config interface {
	AgentHostPort() string
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a global Jaeger tracer. Without an agent address the
// opentracing no-op tracer stays in place.
func Init(config config, fallbackName string) (io.Closer, error) {
	if config.AgentHostPort() == "" {
		logger.Info("tracing is disabled")
		return nopCloser{}, nil
	}

	name := config.ServiceName()
	if name == "" {
		name = fallbackName
	}
	cfg := jaegercfg.Configuration{
		ServiceName: name,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("service", name), zap.String("agent", config.AgentHostPort()))
	return closer, nil
}
