package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomasbasham/formflat"
)

// Tracer records every event as a short OpenTelemetry span named
// "formflat.<stage>".
type Tracer struct {
	ctx    context.Context
	tracer trace.Tracer
}

// NewTracer returns a Tracer starting spans with tracer, for example
// otel.Tracer("formflat").
func NewTracer(tracer trace.Tracer) *Tracer {
	return &Tracer{ctx: context.Background(), tracer: tracer}
}

// WithContext returns a copy of t whose spans are children of the span in
// ctx.
func (t *Tracer) WithContext(ctx context.Context) *Tracer {
	return &Tracer{ctx: ctx, tracer: t.tracer}
}

// Observe implements [formflat.Observer].
func (t *Tracer) Observe(e formflat.Event) {
	_, span := t.tracer.Start(t.ctx, "formflat."+string(e.Stage))
	defer span.End()

	span.SetAttributes(
		attribute.String("formflat.stage", string(e.Stage)),
		attribute.Int("formflat.count", e.Count),
	)
	switch e.Stage {
	case formflat.StageClean:
		span.SetAttributes(attribute.Int("formflat.removed", e.Removed))
	case formflat.StageAppend:
		span.SetAttributes(attribute.String("formflat.key", e.Key))
	}
}
