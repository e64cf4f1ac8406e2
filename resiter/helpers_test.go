package resiter

import (
	"slices"
	"strconv"
	"testing"

	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

func success[O, E any](v O) result.Result[O, E] { return result.Ok[O, E](v) }

func failure[O, E any](e E) result.Result[O, E] { return result.Err[O](e) }

func results[O, E any](rs ...result.Result[O, E]) Iterator[O, E] {
	return iterator.FromSlice(rs)
}

func parse(s string) result.Result[int, error] {
	n, err := strconv.Atoi(s)
	return result.Of(n, err)
}

// parsed yields one parse result per line.
func parsed(lines ...string) Iterator[int, error] {
	return iterator.Map(iterator.FromSlice(lines), parse)
}

func render[O, E any](it Iterator[O, E]) []string {
	var out []string
	for r := range iterator.Seq(it) {
		out = append(out, r.String())
	}
	return out
}

func assertRendered[O, E any](t *testing.T, it Iterator[O, E], want ...string) {
	t.Helper()
	got := render(it)
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func upTo(n int) []int {
	out := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return out
}
