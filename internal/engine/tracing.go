package engine

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/donaldgifford/deal-scanner/internal/engine"

// WithTracerProvider sets the provider cycle and delivery spans are created
// from. The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// finishSpan records err on span, if any, and ends it.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
