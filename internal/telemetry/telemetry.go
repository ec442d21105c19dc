// Package telemetry wires an optional OpenTelemetry trace exporter. Tracing
// is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set, so normal interactive use
// carries no overhead.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Provider owns the tracer provider lifecycle.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// Noop returns a disabled provider whose spans do nothing.
func Noop() *Provider {
	return &Provider{tracer: otel.Tracer("turntable")}
}

// Setup creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns a disabled provider (never nil) when tracing is not configured.
func Setup(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return &Provider{tracer: otel.Tracer("turntable")}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "turntable"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer("turntable/api"),
		enabled:  true,
	}, nil
}

// Tracer returns the tracer for instrumenting client calls. Safe to use on a
// disabled provider; spans become no-ops.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
