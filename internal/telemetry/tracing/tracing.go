package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer is used by all repos, services and analyzers.
// No exporter is configured by the core, so spans are no-ops
// unless the host process installs a tracer provider.
var GlobalTracer = otel.Tracer("ironlog")

func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
