// Package metrics exposes toolkit operation metrics through an OpenTelemetry
// meter provider backed by a Prometheus exporter.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

const (
	// OutcomeOK labels an operation that produced a result.
	OutcomeOK = "ok"
	// OutcomeInvalid labels an operation rejected because of its input.
	OutcomeInvalid = "invalid"
)

// Recorder records the outcome and latency of a single operation.
type Recorder interface {
	Observe(ctx context.Context, operation, outcome string, elapsed time.Duration)
}

// Metrics owns the meter provider and the instruments fed by the toolkit.
type Metrics struct {
	// Provider can be handed to other OpenTelemetry instrumented components.
	Provider *sdkmetric.MeterProvider

	operations metric.Int64Counter
	duration   metric.Float64Histogram
}

// Ensure Metrics implements Recorder.
var _ Recorder = (*Metrics)(nil)

// NewRegistry returns a Prometheus registry with the Go runtime and process
// collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the meter provider, registers its exporter with reg and builds
// the operation instruments.
func New(reg prometheus.Registerer) (*Metrics, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := mp.Meter("utilbox/toolkit")

	operations, err := meter.Int64Counter("utilbox_operations",
		metric.WithDescription("Number of toolkit operations by operation and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("utilbox_operation_duration",
		metric.WithDescription("Latency of toolkit operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Metrics{
		Provider:   mp,
		operations: operations,
		duration:   duration,
	}, nil
}

// Observe increments the operation counter and records elapsed.
func (m *Metrics) Observe(ctx context.Context, operation, outcome string, elapsed time.Duration) {
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if err := m.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}

type nop struct{}

func (nop) Observe(context.Context, string, string, time.Duration) {}

// Nop returns a Recorder that drops every observation.
func Nop() Recorder { return nop{} }
