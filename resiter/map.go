package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// Iterator is a lazy sequence of result values.
type Iterator[O, E any] = iterator.Iterator[result.Result[O, E]]

// MapOk transforms each success value using fn. Failures pass through.
func MapOk[O, O2, E any](it Iterator[O, E], fn func(O) O2) Iterator[O2, E] {
	return &mapOkIter[O, O2, E]{source: it, fn: fn}
}

// MapErr transforms each failure value using fn. Successes pass through.
func MapErr[O, E, E2 any](it Iterator[O, E], fn func(E) E2) Iterator[O, E2] {
	return &mapErrIter[O, E, E2]{source: it, fn: fn}
}

// TryMapOk replaces each success with the outcome of fn, which may be a
// failure. Failures pass through.
func TryMapOk[O, O2, E any](it Iterator[O, E], fn func(O) result.Result[O2, E]) Iterator[O2, E] {
	return &tryMapOkIter[O, O2, E]{source: it, fn: fn}
}

// TryMapErr replaces each failure with the outcome of fn, which may recover
// it into a success. Successes pass through.
func TryMapErr[O, E, E2 any](it Iterator[O, E], fn func(E) result.Result[O, E2]) Iterator[O, E2] {
	return &tryMapErrIter[O, E, E2]{source: it, fn: fn}
}

// AndThenOk is TryMapOk.
func AndThenOk[O, O2, E any](it Iterator[O, E], fn func(O) result.Result[O2, E]) Iterator[O2, E] {
	return TryMapOk(it, fn)
}

// AndThenErr is TryMapErr.
func AndThenErr[O, E, E2 any](it Iterator[O, E], fn func(E) result.Result[O, E2]) Iterator[O, E2] {
	return TryMapErr(it, fn)
}

type mapOkIter[O, O2, E any] struct {
	source Iterator[O, E]
	fn     func(O) O2
}

func (it *mapOkIter[O, O2, E]) Next() (result.Result[O2, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return result.Result[O2, E]{}, false
	}
	return result.MapOk(r, it.fn), true
}

func (it *mapOkIter[O, O2, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *mapOkIter[O, O2, E]) Close() error { return it.source.Close() }

type mapErrIter[O, E, E2 any] struct {
	source Iterator[O, E]
	fn     func(E) E2
}

func (it *mapErrIter[O, E, E2]) Next() (result.Result[O, E2], bool) {
	r, ok := it.source.Next()
	if !ok {
		return result.Result[O, E2]{}, false
	}
	return result.MapErr(r, it.fn), true
}

func (it *mapErrIter[O, E, E2]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *mapErrIter[O, E, E2]) Close() error { return it.source.Close() }

type tryMapOkIter[O, O2, E any] struct {
	source Iterator[O, E]
	fn     func(O) result.Result[O2, E]
}

func (it *tryMapOkIter[O, O2, E]) Next() (result.Result[O2, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		return result.Result[O2, E]{}, false
	}
	return result.AndThen(r, it.fn), true
}

func (it *tryMapOkIter[O, O2, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *tryMapOkIter[O, O2, E]) Close() error { return it.source.Close() }

type tryMapErrIter[O, E, E2 any] struct {
	source Iterator[O, E]
	fn     func(E) result.Result[O, E2]
}

func (it *tryMapErrIter[O, E, E2]) Next() (result.Result[O, E2], bool) {
	r, ok := it.source.Next()
	if !ok {
		return result.Result[O, E2]{}, false
	}
	return result.OrElse(r, it.fn), true
}

func (it *tryMapErrIter[O, E, E2]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *tryMapErrIter[O, E, E2]) Close() error { return it.source.Close() }
