package observe

import (
	"context"

	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/logger"
	"github.com/kbukum/resultiter/observability"
	"github.com/kbukum/resultiter/resiter"
	"github.com/kbukum/resultiter/result"
)

// WithMetrics counts every element of the named sequence on the
// sequence.elements counter, split by branch.
func WithMetrics[O, E any](ctx context.Context, it resiter.Iterator[O, E], m *observability.Metrics, name string) resiter.Iterator[O, E] {
	return &metricsIter[O, E]{ctx: ctx, source: it, metrics: m, name: name}
}

// CountDiscards wraps a filter predicate so that every rejected value is
// counted on sequence.discarded.
//
//	resiter.FilterOk(it, observe.CountDiscards(ctx, m, "lines", nonEmpty))
func CountDiscards[T any](ctx context.Context, m *observability.Metrics, name string, keep func(T) bool) func(T) bool {
	return func(v T) bool {
		if keep(v) {
			return true
		}
		m.RecordDiscarded(ctx, name)
		return false
	}
}

type metricsIter[O, E any] struct {
	ctx     context.Context
	source  resiter.Iterator[O, E]
	metrics *observability.Metrics
	name    string
}

func (it *metricsIter[O, E]) Next() (result.Result[O, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return r, false
	}
	branch := logger.BranchOk
	if r.IsErr() {
		branch = logger.BranchErr
	}
	it.metrics.RecordElement(it.ctx, it.name, branch)
	return r, true
}

func (it *metricsIter[O, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *metricsIter[O, E]) Close() error { return it.source.Close() }
