package iterator

// Map transforms each value using fn.
func Map[I, O any](it Iterator[I], fn func(I) O) Iterator[O] {
	return &mapIter[I, O]{source: it, fn: fn}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](it Iterator[T], fn func(T) bool) Iterator[T] {
	return &filterIter[T]{source: it, fn: fn}
}

// FilterMap transforms each value using fn and keeps only the results fn
// reports as present.
func FilterMap[I, O any](it Iterator[I], fn func(I) (O, bool)) Iterator[O] {
	return &filterMapIter[I, O]{source: it, fn: fn}
}

// FlatMap transforms each value into an iterator and flattens the results.
func FlatMap[I, O any](it Iterator[I], fn func(I) Iterator[O]) Iterator[O] {
	return &flatMapIter[I, O]{source: it, fn: fn}
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
func Tap[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return &tapIter[T]{source: it, fn: fn}
}

// Concat joins multiple iterators sequentially.
// All values from the first iterator are yielded before the second, etc.
func Concat[T any](iters ...Iterator[T]) Iterator[T] {
	return &concatIter[T]{iters: iters}
}

// FlatHint bounds a flattening iterator given its outer source's hint and
// the hint of the inner iterator being drained (Exact(0) when idle). Each
// outer value may expand to any number of values, so only the draining inner
// contributes a lower bound, and an upper bound exists only once the outer
// source is known to be empty.
func FlatHint(outer, inner Hint) Hint {
	h := Hint{Lower: inner.Lower}
	if outer.Bounded && outer.Upper == 0 {
		h.Upper = inner.Upper
		h.Bounded = inner.Bounded
	}
	return h
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *mapIter[I, O]) Next() (O, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return it.fn(val), true
}

func (it *mapIter[I, O]) SizeHint() Hint { return SizeHint(it.source) }

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if it.fn(val) {
			return val, true
		}
	}
}

func (it *filterIter[T]) SizeHint() Hint { return SizeHint(it.source).AtMost() }

func (it *filterIter[T]) Close() error { return it.source.Close() }

type filterMapIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) (O, bool)
}

func (it *filterMapIter[I, O]) Next() (O, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		if out, keep := it.fn(val); keep {
			return out, true
		}
	}
}

func (it *filterMapIter[I, O]) SizeHint() Hint { return SizeHint(it.source).AtMost() }

func (it *filterMapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(I) Iterator[O]
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next() (O, bool) {
	for {
		if it.current != nil {
			if val, ok := it.current.Next(); ok {
				return val, true
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok := it.source.Next()
		if !ok {
			var zero O
			return zero, false
		}
		it.current = it.fn(in)
	}
}

func (it *flatMapIter[I, O]) SizeHint() Hint {
	inner := Exact(0)
	if it.current != nil {
		inner = SizeHint(it.current)
	}
	return FlatHint(SizeHint(it.source), inner)
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
		it.current = nil
	}
	return it.source.Close()
}

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(T)
}

func (it *tapIter[T]) Next() (T, bool) {
	val, ok := it.source.Next()
	if !ok {
		return val, false
	}
	it.fn(val)
	return val, true
}

func (it *tapIter[T]) SizeHint() Hint { return SizeHint(it.source) }

func (it *tapIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.iters) {
		if val, ok := it.iters[it.index].Next(); ok {
			return val, true
		}
		it.index++
	}
	var zero T
	return zero, false
}

func (it *concatIter[T]) SizeHint() Hint {
	h := Exact(0)
	for _, rest := range it.iters[it.index:] {
		h = h.Add(SizeHint(rest))
	}
	return h
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
