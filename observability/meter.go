package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/resultiter/logger"
	"github.com/kbukum/resultiter/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported in the resource.
	ServiceName string
	// ServiceVersion is the version reported in the resource.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Get().String(),
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string, opts ...metric.MeterOption) metric.Meter {
	return otel.Meter(name, opts...)
}

// Drain outcomes recorded by RecordDrain.
const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Metrics holds the instruments used to observe result sequences.
type Metrics struct {
	elements      metric.Int64Counter
	discarded     metric.Int64Counter
	drained       metric.Int64Counter
	drainDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter("sequence.elements",
		metric.WithDescription("Elements pulled from a result sequence, by branch"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.elements counter: %w", err)
	}

	discarded, err := meter.Int64Counter("sequence.discarded",
		metric.WithDescription("Elements dropped by a filtering stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.discarded counter: %w", err)
	}

	drained, err := meter.Int64Counter("sequence.drained",
		metric.WithDescription("Sequences pulled to the end or to their first failure"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.drained counter: %w", err)
	}

	drainDuration, err := meter.Float64Histogram("sequence.drain.duration",
		metric.WithDescription("Time spent draining a sequence"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.drain.duration histogram: %w", err)
	}

	return &Metrics{
		elements:      elements,
		discarded:     discarded,
		drained:       drained,
		drainDuration: drainDuration,
	}, nil
}

// RecordElement counts one element of the named sequence on the given
// branch (logger.BranchOk or logger.BranchErr).
func (m *Metrics) RecordElement(ctx context.Context, sequence, branch string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, sequence),
		attribute.String(AttrBranch, branch),
	))
}

// RecordDiscarded counts one element dropped by the named filtering stage.
func (m *Metrics) RecordDiscarded(ctx context.Context, sequence string) {
	m.discarded.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, sequence),
	))
}

// RecordDrain records the end of a drain with its outcome and duration.
func (m *Metrics) RecordDrain(ctx context.Context, sequence, status string, duration time.Duration) {
	m.drained.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, sequence),
		attribute.String(AttrStatus, status),
	))
	m.drainDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrSequence, sequence),
	))
}
