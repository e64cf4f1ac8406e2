package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resultiter/observability"
	"github.com/kbukum/resultiter/resiter"
	"github.com/kbukum/resultiter/result"
)

// Traced runs resiter.WhileOk inside a sequence.drain span. The span records
// how many successes were consumed and, when the drain stopped early, the
// failure that stopped it. metrics may be nil.
func Traced[O, E any](ctx context.Context, tracer trace.Tracer, metrics *observability.Metrics, name string, it resiter.Iterator[O, E], fn func(O)) result.Result[struct{}, E] {
	ctx, op := observability.StartOperation(ctx, tracer, name, metrics)
	okCount := 0
	res := resiter.WhileOk(it, func(v O) {
		okCount++
		fn(v)
	})

	var failure error
	if e, isErr := res.Err(); isErr {
		failure = asError(e)
	}
	op.End(ctx, okCount, failure)
	return res
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
