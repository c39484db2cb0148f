package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "qualifier"

// Tracer returns the tracer of the globally installed provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
