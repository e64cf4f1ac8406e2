package iterator

import "iter"

// Collect pulls all values and returns them as a slice. The iterator is
// closed afterwards.
func Collect[T any](it Iterator[T]) []T {
	defer it.Close()
	var out []T
	if h := SizeHint(it); h.Lower > 0 {
		out = make([]T, 0, h.Lower)
	}
	for {
		val, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, val)
	}
}

// Count drains the iterator and returns how many values it produced.
func Count[T any](it Iterator[T]) int {
	defer it.Close()
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// ForEach pulls all values and calls fn for each.
func ForEach[T any](it Iterator[T], fn func(T)) {
	defer it.Close()
	for {
		val, ok := it.Next()
		if !ok {
			return
		}
		fn(val)
	}
}

// Seq exposes the iterator as an iter.Seq for use with range. The iterator
// is closed when the loop ends, including on break.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}
