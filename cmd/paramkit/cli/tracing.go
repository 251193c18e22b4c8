// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider returns a tracer provider that logs every finished
// span to logger at debug level. Spans are exported synchronously when
// they end, so nothing is lost if the process exits right after a
// command. Callers shut the provider down on exit.
func NewTracerProvider(logger *slog.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(&logExporter{logger: logger}),
	)
}

// logExporter implements sdktrace.SpanExporter on top of slog.
type logExporter struct {
	logger *slog.Logger
}

func (e *logExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		attrs := []any{
			"span", span.Name(),
			"trace_id", span.SpanContext().TraceID().String(),
			"span_id", span.SpanContext().SpanID().String(),
			"duration", span.EndTime().Sub(span.StartTime()),
		}
		for _, attribute := range span.Attributes() {
			attrs = append(attrs, string(attribute.Key), attribute.Value.Emit())
		}
		if status := span.Status(); status.Code == codes.Error {
			attrs = append(attrs, "status", "error", "status_message", status.Description)
		}
		e.logger.DebugContext(ctx, "span finished", attrs...)
	}
	return nil
}

func (e *logExporter) Shutdown(context.Context) error { return nil }
