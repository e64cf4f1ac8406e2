package iterator

import "fmt"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted, and
	// keeps doing so on every later call.
	Next() (T, bool)
	// Close releases any resources held by the iterator and its upstream.
	Close() error
}

// Hinter is implemented by iterators that can estimate how many values remain.
type Hinter interface {
	SizeHint() Hint
}

// Hint bounds the number of values an iterator has left to produce.
// Upper is only meaningful when Bounded is true.
type Hint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exact returns a hint for exactly n remaining values.
func Exact(n int) Hint {
	return Hint{Lower: n, Upper: n, Bounded: true}
}

// Unknown returns the hint that promises nothing.
func Unknown() Hint {
	return Hint{}
}

// SizeHint returns the iterator's own hint when it implements Hinter, or Unknown.
func SizeHint[T any](it Iterator[T]) Hint {
	if h, ok := it.(Hinter); ok {
		return h.SizeHint()
	}
	return Unknown()
}

// AtMost keeps the upper bound and drops the lower bound to zero. Adaptors
// that may discard values report their upstream's hint through AtMost.
func (h Hint) AtMost() Hint {
	return Hint{Upper: h.Upper, Bounded: h.Bounded}
}

// Add combines the hints of two sequences produced back to back.
func (h Hint) Add(o Hint) Hint {
	sum := Hint{Lower: h.Lower + o.Lower}
	if h.Bounded && o.Bounded {
		sum.Upper = h.Upper + o.Upper
		sum.Bounded = true
	}
	return sum
}

// Contains reports whether n remaining values is consistent with h.
func (h Hint) Contains(n int) bool {
	if n < h.Lower {
		return false
	}
	return !h.Bounded || n <= h.Upper
}

// IsExact reports whether h pins the remaining count to a single value.
func (h Hint) IsExact() bool {
	return h.Bounded && h.Lower == h.Upper
}

func (h Hint) String() string {
	if !h.Bounded {
		return fmt.Sprintf("(%d, unbounded)", h.Lower)
	}
	return fmt.Sprintf("(%d, %d)", h.Lower, h.Upper)
}
