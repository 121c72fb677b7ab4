package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
	Agent() string
}

// Init installs a jaeger tracer as the global opentracing tracer. A disabled config installs a noop tracer.
// The returned closer flushes buffered spans.
func Init(config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: config.ServiceName(),
		Disabled:    !config.Enabled(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.Agent(),
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)

	if config.Enabled() {
		logger.Info("tracing enabled", zap.String("agent", config.Agent()))
	}
	return closer, nil
}
