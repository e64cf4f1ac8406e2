package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// FlatMapOk replaces each success with the values of the iterator fn returns
// for it, each wrapped as a success. A nil iterator counts as empty.
// Failures pass through in their original position.
func FlatMapOk[O, O2, E any](it Iterator[O, E], fn func(O) iterator.Iterator[O2]) Iterator[O2, E] {
	return &flatMapOkIter[O, O2, E]{source: it, fn: fn}
}

// FlatMapErr replaces each failure with the values of the iterator fn
// returns for it, each wrapped as a failure. Successes pass through.
func FlatMapErr[O, E, E2 any](it Iterator[O, E], fn func(E) iterator.Iterator[E2]) Iterator[O, E2] {
	return &flatMapErrIter[O, E, E2]{source: it, fn: fn}
}

// FlattenOk splices the elements of each success slice into the sequence as
// individual successes. Empty slices contribute nothing.
func FlattenOk[T, E any](it Iterator[[]T, E]) Iterator[T, E] {
	return FlatMapOk(it, iterator.FromSlice[T])
}

// FlattenErr splices the elements of each failure slice into the sequence as
// individual failures.
func FlattenErr[O, T any](it Iterator[O, []T]) Iterator[O, T] {
	return FlatMapErr(it, iterator.FromSlice[T])
}

// FlattenOkIter is FlattenOk for successes that carry an iterator.
func FlattenOkIter[T, E any](it Iterator[iterator.Iterator[T], E]) Iterator[T, E] {
	return FlatMapOk(it, func(inner iterator.Iterator[T]) iterator.Iterator[T] { return inner })
}

// FlattenErrIter is FlattenErr for failures that carry an iterator.
func FlattenErrIter[O, T any](it Iterator[O, iterator.Iterator[T]]) Iterator[O, T] {
	return FlatMapErr(it, func(inner iterator.Iterator[T]) iterator.Iterator[T] { return inner })
}

// flatMapOkIter is idle while inner is nil and draining otherwise.
type flatMapOkIter[O, O2, E any] struct {
	source Iterator[O, E]
	fn     func(O) iterator.Iterator[O2]
	inner  iterator.Iterator[O2]
}

func (it *flatMapOkIter[O, O2, E]) Next() (result.Result[O2, E], bool) {
	for {
		if it.inner != nil {
			if v, ok := it.inner.Next(); ok {
				return result.Ok[O2, E](v), true
			}
			_ = it.inner.Close()
			it.inner = nil
		}
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O2, E]{}, false
		}
		v, isOk := r.Ok()
		if !isOk {
			e, _ := r.Err()
			return result.Err[O2](e), true
		}
		it.inner = it.fn(v)
	}
}

func (it *flatMapOkIter[O, O2, E]) SizeHint() iterator.Hint {
	return iterator.FlatHint(iterator.SizeHint(it.source), innerHint(it.inner))
}

func (it *flatMapOkIter[O, O2, E]) Close() error {
	if it.inner != nil {
		_ = it.inner.Close()
		it.inner = nil
	}
	return it.source.Close()
}

type flatMapErrIter[O, E, E2 any] struct {
	source Iterator[O, E]
	fn     func(E) iterator.Iterator[E2]
	inner  iterator.Iterator[E2]
}

func (it *flatMapErrIter[O, E, E2]) Next() (result.Result[O, E2], bool) {
	for {
		if it.inner != nil {
			if e, ok := it.inner.Next(); ok {
				return result.Err[O](e), true
			}
			_ = it.inner.Close()
			it.inner = nil
		}
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O, E2]{}, false
		}
		e, isErr := r.Err()
		if !isErr {
			v, _ := r.Ok()
			return result.Ok[O, E2](v), true
		}
		it.inner = it.fn(e)
	}
}

func (it *flatMapErrIter[O, E, E2]) SizeHint() iterator.Hint {
	return iterator.FlatHint(iterator.SizeHint(it.source), innerHint(it.inner))
}

func (it *flatMapErrIter[O, E, E2]) Close() error {
	if it.inner != nil {
		_ = it.inner.Close()
		it.inner = nil
	}
	return it.source.Close()
}

func innerHint[T any](inner iterator.Iterator[T]) iterator.Hint {
	if inner == nil {
		return iterator.Exact(0)
	}
	return iterator.SizeHint(inner)
}
