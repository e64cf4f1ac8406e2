// Package iterator provides the pull-based iteration protocol that result
// sequences are built on.
//
// An Iterator produces one value per call to Next and reports exhaustion
// with a false flag. Iterators are lazy: wrapping one in an operator does no
// work until values are pulled via Next, Collect, Count, ForEach or a range
// loop over Seq. Each operator pulls from the previous stage on demand.
//
// Iterators may also implement Hinter to estimate how many values remain.
// Operators propagate hints so that the lower bound never exceeds, and a
// bounded upper bound never understates, the true remaining count.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - FilterMap: transform and drop in one step
//   - FlatMap: transform each value into an iterator and splice it in
//   - Tap: side-effect without altering the value
//   - Concat: join iterators sequentially
//
// # Usage
//
//	src := iterator.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := iterator.Map(src, func(n int) int { return n * 2 })
//	big := iterator.Filter(doubled, func(n int) bool { return n > 4 })
//	for n := range iterator.Seq(big) {
//	    fmt.Println(n)
//	}
package iterator
