package iterator

import "iter"

// FromSlice creates an iterator over the values of items.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Of creates an iterator over the given values.
func Of[T any](items ...T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// FromSeq adapts a push-style iter.Seq into a pull-style Iterator.
// Close stops the underlying sequence; it must be called if the iterator is
// abandoned before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIter[T]{next: next, stop: stop}
}

// FromFunc creates an iterator from a generator. fn is not called again once
// it has reported exhaustion.
func FromFunc[T any](fn func() (T, bool)) Iterator[T] {
	return &funcIter[T]{fn: fn}
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}

func (it *sliceIter[T]) SizeHint() Hint { return Exact(len(it.items) - it.index) }

func (it *sliceIter[T]) Close() error {
	it.index = len(it.items)
	return nil
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next() (T, bool) { return it.next() }

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}

type funcIter[T any] struct {
	fn   func() (T, bool)
	done bool
}

func (it *funcIter[T]) Next() (T, bool) {
	if !it.done {
		if val, ok := it.fn(); ok {
			return val, true
		}
		it.done = true
	}
	var zero T
	return zero, false
}

func (it *funcIter[T]) Close() error {
	it.done = true
	return nil
}
