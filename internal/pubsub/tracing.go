package pubsub

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "folio-pubsub"

// TracingConfig holds configuration for OpenTelemetry tracing of bus traffic.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
	Version     string
}

// SetupOTel builds a tracer for the bus. When tracing is disabled it returns a
// no-op tracer and a shutdown func that does nothing.
func SetupOTel(ctx context.Context, cfg TracingConfig) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(tracerName), func(context.Context) error { return nil }, nil
	}

	// The exporter only dials on flush, so a bad host surfaces later as export errors.
	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.Version),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Tracer(tracerName), tp.Shutdown, nil
}
