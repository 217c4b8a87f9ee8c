// Package tracing wires OpenTelemetry spans around pipeline stages.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	ModeNone   = "none"
	ModeStdout = "stdout"

	instrumentation = "hearthly-api/pipeline"
)

// Setup installs the global tracer provider for mode and returns its
// shutdown func. ModeNone keeps the no-op provider.
func Setup(mode, serviceName string, logger *zap.Logger) (func(context.Context) error, error) {
	return setup(mode, serviceName, os.Stdout, logger)
}

func setup(mode, serviceName string, w io.Writer, logger *zap.Logger) (func(context.Context) error, error) {
	switch mode {
	case "", ModeNone:
		logger.Info("tracing disabled")
		return func(context.Context) error { return nil }, nil
	case ModeStdout:
	default:
		return nil, fmt.Errorf("unknown tracing mode %q", mode)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing initialized", zap.String("exporter", mode))
	return tp.Shutdown, nil
}

// Start opens a span for one pipeline stage.
func Start(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentation).Start(ctx, stage, trace.WithAttributes(attrs...))
}

// End closes span, marking it failed when err is set.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
