package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation tracks one drain of a named sequence across a span and the
// sequence metrics.
type Operation struct {
	Sequence  string
	StartTime time.Time
	Metrics   *Metrics
	span      trace.Span
}

// operationKey is the context key for Operation.
type operationKey struct{}

// StartOperation starts a span named SpanDrain on tracer and returns a
// context carrying both. If metrics is nil, metric recording is skipped.
func StartOperation(ctx context.Context, tracer trace.Tracer, sequence string, metrics *Metrics) (context.Context, *Operation) {
	ctx, span := tracer.Start(ctx, SpanDrain, trace.WithAttributes(
		attribute.String(AttrSequence, sequence),
	))
	op := &Operation{
		Sequence:  sequence,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
	return context.WithValue(ctx, operationKey{}, op), op
}

// OperationFromContext retrieves the Operation from context, or nil.
func OperationFromContext(ctx context.Context) *Operation {
	if op, ok := ctx.Value(operationKey{}).(*Operation); ok {
		return op
	}
	return nil
}

// Span returns the span the operation runs in.
func (op *Operation) Span() trace.Span { return op.span }

// End closes the span and records the drain. A non-nil failure marks the
// span failed and the drain StatusFailed.
func (op *Operation) End(ctx context.Context, okCount int, failure error) {
	duration := time.Since(op.StartTime)
	status := StatusComplete
	if failure != nil {
		status = StatusFailed
		op.span.RecordError(failure)
		op.span.SetStatus(codes.Error, failure.Error())
	}
	op.span.SetAttributes(
		attribute.Int(AttrOkCount, okCount),
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	op.span.End()

	if op.Metrics != nil {
		op.Metrics.RecordDrain(ctx, op.Sequence, status, duration)
	}
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}
