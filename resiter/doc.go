// Package resiter provides lazy adaptors over iterators of result.Result
// values that act on only the success branch or only the failure branch.
//
// Every adaptor wraps an upstream Iterator and a callback and is itself an
// Iterator, so adaptors compose by nesting. Nothing is pulled from the
// upstream until the outermost adaptor is pulled, and callbacks run at most
// once per element of the branch they target. Elements of the other branch
// pass through unchanged and in their original position.
//
// # Adaptors
//
// Cardinality-preserving:
//
//   - MapOk, MapErr: transform one branch
//   - TryMapOk, TryMapErr (AndThenOk, AndThenErr): transform one branch with a callback that may switch branches
//   - OnOk, OnErr: observe one branch
//   - InnerOkOrElse: turn empty successes into failures
//
// Discarding:
//
//   - FilterOk, FilterErr: keep elements of one branch matching a predicate
//   - TryFilterOk, TryFilterErr (FilterOkAndThen): predicate that may itself fail
//   - FilterMapOk, FilterMapErr: transform and drop in one step
//   - TryFilterMapOk, TryFilterMapErr (AndThenFilter): fallible transform and drop
//   - Oks, Errors: project to the bare payloads of one branch
//   - UnwrapWith: project to success values, recovering or dropping failures
//
// Expanding:
//
//   - FlatMapOk, FlatMapErr: replace an element by the values of an iterator
//   - FlattenOk, FlattenErr: splice slice payloads in
//
// Terminals:
//
//   - WhileOk: consume successes until the first failure
//   - CollectResult: all successes, or the first failure
//   - Partition: split into successes and failures
//   - Pairs: range over (value, error) pairs
//
// # Usage
//
//	lines := iterator.Of("1", "2", "a", "4")
//	parsed := iterator.Map(lines, func(s string) result.Result[int, error] {
//	    return result.Of(strconv.Atoi(s))
//	})
//	doubled := resiter.MapOk(parsed, func(n int) int { return n * 2 })
//	logged := resiter.OnErr(doubled, func(err error) { log.Println(err) })
//	sum := 0
//	res := resiter.WhileOk(logged, func(n int) { sum += n })
//
// Chain offers the same adaptors as methods for pipelines whose element types
// stay fixed:
//
//	resiter.From(parsed).
//	    FilterOk(func(n int) bool { return n > 0 }).
//	    OnErr(report).
//	    Collect()
//
// # Size hints
//
// Adaptors that keep one output per input report their upstream's hint.
// Adaptors that may discard report it with the lower bound dropped to zero.
// Flattening adaptors know only the values left in the inner iterator they
// are draining, and report an upper bound only once the upstream is empty.
package resiter
