package resiter

import (
	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

// Chain wraps a result iterator so that adaptors which keep the element
// types unchanged can be applied as methods. Chain is itself an Iterator.
type Chain[O, E any] struct {
	it Iterator[O, E]
}

// From starts a Chain over it.
func From[O, E any](it Iterator[O, E]) Chain[O, E] {
	return Chain[O, E]{it: it}
}

// Next implements iterator.Iterator.
func (c Chain[O, E]) Next() (result.Result[O, E], bool) { return c.it.Next() }

// Close implements iterator.Iterator.
func (c Chain[O, E]) Close() error { return c.it.Close() }

// SizeHint implements iterator.Hinter.
func (c Chain[O, E]) SizeHint() iterator.Hint { return iterator.SizeHint(c.it) }

// Iter returns the wrapped iterator.
func (c Chain[O, E]) Iter() Iterator[O, E] { return c.it }

func (c Chain[O, E]) MapOk(fn func(O) O) Chain[O, E] {
	return From(MapOk(c.it, fn))
}

func (c Chain[O, E]) MapErr(fn func(E) E) Chain[O, E] {
	return From(MapErr(c.it, fn))
}

func (c Chain[O, E]) AndThenOk(fn func(O) result.Result[O, E]) Chain[O, E] {
	return From(TryMapOk(c.it, fn))
}

func (c Chain[O, E]) AndThenErr(fn func(E) result.Result[O, E]) Chain[O, E] {
	return From(TryMapErr(c.it, fn))
}

func (c Chain[O, E]) FilterOk(keep func(O) bool) Chain[O, E] {
	return From(FilterOk(c.it, keep))
}

func (c Chain[O, E]) FilterErr(keep func(E) bool) Chain[O, E] {
	return From(FilterErr(c.it, keep))
}

func (c Chain[O, E]) TryFilterOk(keep func(O) result.Result[bool, E]) Chain[O, E] {
	return From(TryFilterOk(c.it, keep))
}

func (c Chain[O, E]) TryFilterErr(keep func(E) result.Result[bool, E]) Chain[O, E] {
	return From(TryFilterErr(c.it, keep))
}

func (c Chain[O, E]) OnOk(fn func(O)) Chain[O, E] {
	return From(OnOk(c.it, fn))
}

func (c Chain[O, E]) OnErr(fn func(E)) Chain[O, E] {
	return From(OnErr(c.it, fn))
}

// Collect drains the chain into a slice of results.
func (c Chain[O, E]) Collect() []result.Result[O, E] {
	return iterator.Collect(c.it)
}

// WhileOk is the package-level WhileOk applied to the chain.
func (c Chain[O, E]) WhileOk(fn func(O)) result.Result[struct{}, E] {
	return WhileOk(c.it, fn)
}

// Oks is the package-level Oks applied to the chain.
func (c Chain[O, E]) Oks() iterator.Iterator[O] {
	return Oks(c.it)
}

// Errors is the package-level Errors applied to the chain.
func (c Chain[O, E]) Errors() iterator.Iterator[E] {
	return Errors(c.it)
}
