package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// OnOk calls fn with every success value before passing the element through
// unchanged.
func OnOk[O, E any](it Iterator[O, E], fn func(O)) Iterator[O, E] {
	return &onOkIter[O, E]{source: it, fn: fn}
}

// OnErr calls fn with every failure value before passing the element through
// unchanged.
func OnErr[O, E any](it Iterator[O, E], fn func(E)) Iterator[O, E] {
	return &onErrIter[O, E]{source: it, fn: fn}
}

// Oks yields the bare success values and discards failures.
func Oks[O, E any](it Iterator[O, E]) iterator.Iterator[O] {
	return iterator.FilterMap(it, result.GetOk[O, E])
}

// Errors yields the bare failure values and discards successes.
func Errors[O, E any](it Iterator[O, E]) iterator.Iterator[E] {
	return iterator.FilterMap(it, result.GetErr[O, E])
}

// UnwrapWith yields success values directly. Each failure is handed to fn,
// which either substitutes a success value for it or drops it.
func UnwrapWith[O, E any](it Iterator[O, E], fn func(E) (O, bool)) iterator.Iterator[O] {
	return iterator.FilterMap(it, func(r result.Result[O, E]) (O, bool) {
		if v, ok := r.Ok(); ok {
			return v, true
		}
		e, _ := r.Err()
		return fn(e)
	})
}

// InnerOkOrElse unwraps successes holding an optional value. An empty
// success is replaced by the failure orElse builds, so emptiness is never
// silently dropped. Failures pass through and orElse is not called for them.
func InnerOkOrElse[T, E any](it Iterator[result.Option[T], E], orElse func() E) Iterator[T, E] {
	return &innerOkOrElseIter[T, E]{source: it, orElse: orElse}
}

type onOkIter[O, E any] struct {
	source Iterator[O, E]
	fn     func(O)
}

func (it *onOkIter[O, E]) Next() (result.Result[O, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return r, false
	}
	if v, isOk := r.Ok(); isOk {
		it.fn(v)
	}
	return r, true
}

func (it *onOkIter[O, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *onOkIter[O, E]) Close() error { return it.source.Close() }

type onErrIter[O, E any] struct {
	source Iterator[O, E]
	fn     func(E)
}

func (it *onErrIter[O, E]) Next() (result.Result[O, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return r, false
	}
	if e, isErr := r.Err(); isErr {
		it.fn(e)
	}
	return r, true
}

func (it *onErrIter[O, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *onErrIter[O, E]) Close() error { return it.source.Close() }

type innerOkOrElseIter[T, E any] struct {
	source Iterator[result.Option[T], E]
	orElse func() E
}

func (it *innerOkOrElseIter[T, E]) Next() (result.Result[T, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return result.Result[T, E]{}, false
	}
	return result.InnerOkOrElse(r, it.orElse), true
}

func (it *innerOkOrElseIter[T, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *innerOkOrElseIter[T, E]) Close() error { return it.source.Close() }
