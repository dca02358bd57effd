package server

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kestrel-web/kestrel/pkg/httpwire"
)

// startSpan opens a span for one dispatched request. It returns a nil span
// when tracing is disabled; endSpan tolerates that.
func (s *Server) startSpan(ctx context.Context, req *httpwire.Request) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, nil
	}
	return s.tracer.Start(ctx,
		fmt.Sprintf("kestrel %s", req.Path),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", req.Method.String()),
			attribute.String("http.path", req.Path),
		),
	)
}

// endSpan records the response outcome and closes the span.
func endSpan(span trace.Span, resp *httpwire.Response) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.Status))
	if resp.Status >= 500 {
		span.SetStatus(codes.Error, httpwire.ReasonPhrase(resp.Status))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
