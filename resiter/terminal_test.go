package resiter

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/kbukum/resultiter/iterator"
)

func TestWhileOk_StopsAtFirstFailure(t *testing.T) {
	visited := 0
	lines := iterator.Tap(iterator.Of("1", "2", "a", "4", "5"), func(string) { visited++ })

	sum := 0
	res := WhileOk(iterator.Map(lines, parse), func(n int) { sum += n })

	if sum != 3 {
		t.Errorf("sum = %d, want 3", sum)
	}
	err, isErr := res.Err()
	if !isErr {
		t.Fatal("expected the parse failure")
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) || numErr.Num != "a" {
		t.Errorf("got %v, want parse failure for \"a\"", err)
	}
	if visited != 3 {
		t.Errorf("visited %d lines, want 3", visited)
	}
}

func TestWhileOk_AllOk(t *testing.T) {
	sum := 0
	res := WhileOk(parsed("1", "2", "3", "4", "5"), func(n int) { sum += n })
	if sum != 15 {
		t.Errorf("sum = %d, want 15", sum)
	}
	if !res.IsOk() {
		t.Errorf("got %v, want success", res)
	}
}

func TestWhileOk_Empty(t *testing.T) {
	res := WhileOk(results[int, string](), func(int) { t.Error("callback must not run") })
	if !res.IsOk() {
		t.Errorf("got %v, want success", res)
	}
}

func TestCollectResult(t *testing.T) {
	all := CollectResult(parsed("1", "2", "3"))
	if v, isOk := all.Ok(); !isOk || !slices.Equal(v, []int{1, 2, 3}) {
		t.Errorf("got %v", all)
	}
	partial := CollectResult(parsed("1", "b", "3"))
	if !partial.IsErr() {
		t.Errorf("got %v, want failure", partial)
	}
}

func TestPartition(t *testing.T) {
	oks, errs := Partition(mixed())
	if !slices.Equal(oks, []int{1, 2, 3, 4}) {
		t.Errorf("oks = %v", oks)
	}
	if !slices.Equal(errs, []string{"a", "bb", "ccc"}) {
		t.Errorf("errs = %v", errs)
	}
}

func TestPairsRoundTrip(t *testing.T) {
	var values []int
	var failures int
	for v, err := range Pairs(parsed("1", "x", "3")) {
		if err != nil {
			failures++
			continue
		}
		values = append(values, v)
	}
	if !slices.Equal(values, []int{1, 3}) || failures != 1 {
		t.Errorf("values %v, failures %d", values, failures)
	}

	back := FromPairs(Pairs(parsed("7", "y")))
	out := iterator.Collect(back)
	if len(out) != 2 || !out[0].IsOk() || !out[1].IsErr() {
		t.Errorf("got %v", out)
	}
}

func TestPairs_BreakClosesUpstream(t *testing.T) {
	closed := false
	src := FromPairs(func(yield func(int, error) bool) {
		defer func() { closed = true }()
		for i := 0; ; i++ {
			if !yield(i, nil) {
				return
			}
		}
	})
	for v := range Pairs(src) {
		if v == 2 {
			break
		}
	}
	if !closed {
		t.Error("breaking the loop did not stop the producer")
	}
}
