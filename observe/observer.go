package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resultiter/logger"
	"github.com/kbukum/resultiter/observability"
	"github.com/kbukum/resultiter/resiter"
	"github.com/kbukum/resultiter/result"
	"github.com/kbukum/resultiter/version"
)

// Observer bundles the logger and instruments that Sequence and Drain use.
type Observer struct {
	Log     *logger.Logger
	Metrics *observability.Metrics
	Tracer  trace.Tracer
	cfg     Config
}

// Option customizes New.
type Option func(*options)

type options struct {
	meter  metric.Meter
	tracer trace.Tracer
}

// WithMeter uses meter instead of the global meter named by Config.MeterName.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) { o.meter = meter }
}

// WithTracer uses tracer instead of the global tracer named by Config.TracerName.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// New builds an Observer. A nil log falls back to the global logger.
// Instruments are only created for the features cfg enables.
func New(cfg Config, log *logger.Logger, opts ...Option) (*Observer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if log == nil {
		log = logger.GetGlobalLogger()
	}
	obs := &Observer{Log: log, cfg: cfg}
	if !cfg.Enabled {
		return obs, nil
	}

	if cfg.Metrics {
		meter := o.meter
		if meter == nil {
			meter = observability.Meter(cfg.MeterName, metric.WithInstrumentationVersion(version.Get().String()))
		}
		m, err := observability.NewMetrics(meter)
		if err != nil {
			return nil, err
		}
		obs.Metrics = m
	}
	if cfg.Tracing {
		obs.Tracer = o.tracer
		if obs.Tracer == nil {
			obs.Tracer = observability.Tracer(cfg.TracerName, trace.WithInstrumentationVersion(version.Get().String()))
		}
	}
	return obs, nil
}

// Config returns the configuration the observer was built with.
func (o *Observer) Config() Config { return o.cfg }

// Sequence wraps it with failure logging and element counting as enabled
// on o. A nil or disabled observer returns it unchanged.
func Sequence[O, E any](ctx context.Context, o *Observer, name string, it resiter.Iterator[O, E]) resiter.Iterator[O, E] {
	if o == nil || !o.cfg.Enabled {
		return it
	}
	if o.cfg.LogFailures {
		it = WithLogging(it, o.Log, name)
	}
	if o.Metrics != nil {
		it = WithMetrics(ctx, it, o.Metrics, name)
	}
	return it
}

// Drain feeds every success of it to fn until the first failure. With
// tracing enabled the drain runs inside a span.
func Drain[O, E any](ctx context.Context, o *Observer, name string, it resiter.Iterator[O, E], fn func(O)) result.Result[struct{}, E] {
	if o == nil || !o.cfg.Enabled || o.Tracer == nil {
		return resiter.WhileOk(it, fn)
	}
	return Traced(ctx, o.Tracer, o.Metrics, name, it, fn)
}
