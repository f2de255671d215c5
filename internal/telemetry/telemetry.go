// Package telemetry exports one OTLP span per processed key token.
// Disabled (nil exporter) unless OTEL_EXPORTER_OTLP_ENDPOINT is set, so
// normal interactive use carries no tracing cost.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tally/internal/calc"
)

// Exporter traces processed tokens. A nil *Exporter is valid and inert,
// so callers never need to branch on whether tracing is configured.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns (nil, nil) when tracing is not configured.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
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
		serviceName = "tally"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("tally/calc"),
	}, nil
}

// TokenProcessed implements calc.Observer: one span per token, attributes
// carrying the token, the operator that was applied, and the result.
func (e *Exporter) TokenProcessed(ev calc.Event) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(context.Background(), "calc.token")
	span.SetAttributes(
		attribute.String("tally.token", string(rune(ev.Token))),
		attribute.String("tally.operator", ev.Applied.String()),
		attribute.Float64("tally.operand", ev.Operand),
		attribute.Float64("tally.result", ev.Result),
		attribute.Bool("tally.committed", ev.Committed),
	)
	span.End()
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
