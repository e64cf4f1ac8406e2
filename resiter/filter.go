package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// FilterOk keeps the successes for which keep returns true. Failures pass
// through.
func FilterOk[O, E any](it Iterator[O, E], keep func(O) bool) Iterator[O, E] {
	return &filterOkIter[O, E]{source: it, keep: keep}
}

// FilterErr keeps the failures for which keep returns true. Successes pass
// through.
func FilterErr[O, E any](it Iterator[O, E], keep func(E) bool) Iterator[O, E] {
	return &filterErrIter[O, E]{source: it, keep: keep}
}

// TryFilterOk keeps the successes for which keep returns Ok(true) and drops
// those for which it returns Ok(false). When keep fails, its failure is
// emitted in place of the success being tested.
func TryFilterOk[O, E any](it Iterator[O, E], keep func(O) result.Result[bool, E]) Iterator[O, E] {
	return &tryFilterOkIter[O, E]{source: it, keep: keep}
}

// TryFilterErr is TryFilterOk for the failure branch: a failing predicate
// replaces the tested failure with its own.
func TryFilterErr[O, E any](it Iterator[O, E], keep func(E) result.Result[bool, E]) Iterator[O, E] {
	return &tryFilterErrIter[O, E]{source: it, keep: keep}
}

// FilterOkAndThen is TryFilterOk.
func FilterOkAndThen[O, E any](it Iterator[O, E], keep func(O) result.Result[bool, E]) Iterator[O, E] {
	return TryFilterOk(it, keep)
}

type filterOkIter[O, E any] struct {
	source Iterator[O, E]
	keep   func(O) bool
}

func (it *filterOkIter[O, E]) Next() (result.Result[O, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return r, false
		}
		v, isOk := r.Ok()
		if !isOk || it.keep(v) {
			return r, true
		}
	}
}

func (it *filterOkIter[O, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *filterOkIter[O, E]) Close() error { return it.source.Close() }

type filterErrIter[O, E any] struct {
	source Iterator[O, E]
	keep   func(E) bool
}

func (it *filterErrIter[O, E]) Next() (result.Result[O, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return r, false
		}
		e, isErr := r.Err()
		if !isErr || it.keep(e) {
			return r, true
		}
	}
}

func (it *filterErrIter[O, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *filterErrIter[O, E]) Close() error { return it.source.Close() }

type tryFilterOkIter[O, E any] struct {
	source Iterator[O, E]
	keep   func(O) result.Result[bool, E]
}

func (it *tryFilterOkIter[O, E]) Next() (result.Result[O, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return r, false
		}
		v, isOk := r.Ok()
		if !isOk {
			return r, true
		}
		verdict := it.keep(v)
		if e, failed := verdict.Err(); failed {
			return result.Err[O](e), true
		}
		if keep, _ := verdict.Ok(); keep {
			return r, true
		}
	}
}

func (it *tryFilterOkIter[O, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *tryFilterOkIter[O, E]) Close() error { return it.source.Close() }

type tryFilterErrIter[O, E any] struct {
	source Iterator[O, E]
	keep   func(E) result.Result[bool, E]
}

func (it *tryFilterErrIter[O, E]) Next() (result.Result[O, E], bool) {
	for {
		r, ok := it.source.Next()
		if !ok {
			return r, false
		}
		e, isErr := r.Err()
		if !isErr {
			return r, true
		}
		verdict := it.keep(e)
		if e2, failed := verdict.Err(); failed {
			return result.Err[O](e2), true
		}
		if keep, _ := verdict.Ok(); keep {
			return r, true
		}
	}
}

func (it *tryFilterErrIter[O, E]) SizeHint() iterator.Hint {
	return iterator.SizeHint(it.source).AtMost()
}

func (it *tryFilterErrIter[O, E]) Close() error { return it.source.Close() }
