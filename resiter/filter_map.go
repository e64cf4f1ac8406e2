package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// FilterMapOk transforms each success using fn and drops the successes for
// which fn reports no value. Failures pass through.
func FilterMapOk[O, O2, E any](it Iterator[O, E], fn func(O) (O2, bool)) Iterator[O2, E] {
	return &filterMapOkIter[O, O2, E]{source: it, fn: fn}
}

// FilterMapErr transforms each failure using fn and drops the failures for
// which fn reports no value. Successes pass through.
func FilterMapErr[O, E, E2 any](it Iterator[O, E], fn func(E) (E2, bool)) Iterator[O, E2] {
	return &filterMapErrIter[O, E, E2]{source: it, fn: fn}
}

// TryFilterMapOk replaces each success with the outcome fn returns, or drops
// it when fn reports no outcome. Failures pass through.
func TryFilterMapOk[O, O2, E any](it Iterator[O, E], fn func(O) (result.Result[O2, E], bool)) Iterator[O2, E] {
	return &tryFilterMapOkIter[O, O2, E]{source: it, fn: fn}
}

// TryFilterMapErr replaces each failure with the outcome fn returns, or
// drops it when fn reports no outcome. Successes pass through.
func TryFilterMapErr[O, E, E2 any](it Iterator[O, E], fn func(E) (result.Result[O, E2], bool)) Iterator[O, E2] {
	return &tryFilterMapErrIter[O, E, E2]{source: it, fn: fn}
}

// AndThenFilter is TryFilterMapOk.
func AndThenFilter[O, O2, E any](it Iterator[O, E], fn func(O) (result.Result[O2, E], bool)) Iterator[O2, E] {
	return TryFilterMapOk(it, fn)
}

type filterMapOkIter[O, O2, E any] struct {
	source Iterator[O, E]
	fn     func(O) (O2, bool)
}

func (it *filterMapOkIter[O, O2, E]) Next() (result.Result[O2, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O2, E]{}, false
		}
		v, isOk := r.Ok()
		if !isOk {
			e, _ := r.Err()
			return result.Err[O2](e), true
		}
		if out, keep := it.fn(v); keep {
			return result.Ok[O2, E](out), true
		}
	}
}

func (it *filterMapOkIter[O, O2, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *filterMapOkIter[O, O2, E]) Close() error { return it.source.Close() }

type filterMapErrIter[O, E, E2 any] struct {
	source Iterator[O, E]
	fn     func(E) (E2, bool)
}

func (it *filterMapErrIter[O, E, E2]) Next() (result.Result[O, E2], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O, E2]{}, false
		}
		e, isErr := r.Err()
		if !isErr {
			v, _ := r.Ok()
			return result.Ok[O, E2](v), true
		}
		if out, keep := it.fn(e); keep {
			return result.Err[O](out), true
		}
	}
}

func (it *filterMapErrIter[O, E, E2]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *filterMapErrIter[O, E, E2]) Close() error { return it.source.Close() }

type tryFilterMapOkIter[O, O2, E any] struct {
	source Iterator[O, E]
	fn     func(O) (result.Result[O2, E], bool)
}

func (it *tryFilterMapOkIter[O, O2, E]) Next() (result.Result[O2, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O2, E]{}, false
		}
		v, isOk := r.Ok()
		if !isOk {
			e, _ := r.Err()
			return result.Err[O2](e), true
		}
		if out, keep := it.fn(v); keep {
			return out, true
		}
	}
}

func (it *tryFilterMapOkIter[O, O2, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *tryFilterMapOkIter[O, O2, E]) Close() error { return it.source.Close() }

type tryFilterMapErrIter[O, E, E2 any] struct {
	source Iterator[O, E]
	fn     func(E) (result.Result[O, E2], bool)
}

func (it *tryFilterMapErrIter[O, E, E2]) Next() (result.Result[O, E2], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return result.Result[O, E2]{}, false
		}
		e, isErr := r.Err()
		if !isErr {
			v, _ := r.Ok()
			return result.Ok[O, E2](v), true
		}
		if out, keep := it.fn(e); keep {
			return out, true
		}
	}
}

func (it *tryFilterMapErrIter[O, E, E2]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *tryFilterMapErrIter[O, E, E2]) Close() error { return it.source.Close() }
