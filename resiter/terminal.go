package resiter

import (
	"iter"

	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// WhileOk pulls the sequence and calls fn with each success value until the
// first failure, which is returned without pulling any further element.
// When the sequence ends without a failure WhileOk returns a success. The
// iterator is closed in both cases.
func WhileOk[O, E any](it Iterator[O, E], fn func(O)) result.Result[struct{}, E] {
	defer it.Close()
	for {
		r, ok := it.Next()
		if !ok {
			return result.Ok[struct{}, E](struct{}{})
		}
		if e, isErr := r.Err(); isErr {
			return result.Err[struct{}](e)
		}
		v, _ := r.Ok()
		fn(v)
	}
}

// CollectResult gathers all success values, or stops at the first failure
// and returns it.
func CollectResult[O, E any](it Iterator[O, E]) result.Result[[]O, E] {
	var out []O
	if h := iterator.SizeHint(it); h.Lower > 0 {
		out = make([]O, 0, h.Lower)
	}
	res := WhileOk(it, func(v O) { out = append(out, v) })
	if e, isErr := res.Err(); isErr {
		return result.Err[[]O](e)
	}
	return result.Ok[[]O, E](out)
}

// Partition drains the sequence and splits it into its success values and
// its failure values, each in original order.
func Partition[O, E any](it Iterator[O, E]) ([]O, []E) {
	var oks []O
	var errs []E
	iterator.ForEach(it, func(r result.Result[O, E]) {
		if v, ok := r.Ok(); ok {
			oks = append(oks, v)
			return
		}
		e, _ := r.Err()
		errs = append(errs, e)
	})
	return oks, errs
}

// Pairs exposes a sequence of error results as (value, error) pairs for use
// with range. The iterator is closed when the loop ends.
func Pairs[V any](it Iterator[V, error]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		defer it.Close()
		for {
			r, ok := it.Next()
			if !ok {
				return
			}
			v, err, _ := r.Unpack()
			if !yield(v, err) {
				return
			}
		}
	}
}

// FromPairs adapts a sequence of (value, error) pairs into a result
// iterator. Close must be called if it is abandoned before exhaustion.
func FromPairs[V any](seq iter.Seq2[V, error]) Iterator[V, error] {
	return iterator.FromSeq(func(yield func(result.Result[V, error]) bool) {
		for v, err := range seq {
			if !yield(result.Of(v, err)) {
				return
			}
		}
	})
}
