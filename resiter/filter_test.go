package resiter

import (
	"testing"

	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/result"
)

func mixed() Iterator[int, string] {
	return results(
		success[int, string](1),
		failure[int]("a"),
		success[int, string](2),
		failure[int]("bb"),
		success[int, string](3),
		success[int, string](4),
		failure[int]("ccc"),
	)
}

func TestFilterOk(t *testing.T) {
	var tested []int
	evens := FilterOk(mixed(), func(n int) bool {
		tested = append(tested, n)
		return n%2 == 0
	})
	if h := iterator.SizeHint(evens); h != (iterator.Hint{Upper: 7, Bounded: true}) {
		t.Errorf("hint = %v, want (0, 7)", h)
	}
	assertRendered(t, evens, "Err(a)", "Ok(2)", "Err(bb)", "Ok(4)", "Err(ccc)")
	if len(tested) != 4 {
		t.Errorf("predicate saw %v, want only the four successes", tested)
	}
}

func TestFilterErr(t *testing.T) {
	long := FilterErr(mixed(), func(e string) bool { return len(e) > 1 })
	assertRendered(t, long, "Ok(1)", "Ok(2)", "Err(bb)", "Ok(3)", "Ok(4)", "Err(ccc)")
}

func TestFilterOk_DiscardsEverything(t *testing.T) {
	none := FilterOk(results(success[int, string](1), success[int, string](2)), func(int) bool { return false })
	if _, more := none.Next(); more {
		t.Error("expected exhaustion after discarding all elements")
	}
}

func TestTryFilterOk(t *testing.T) {
	keep := func(n int) result.Result[bool, string] {
		if n == 3 {
			return failure[bool]("cannot judge 3")
		}
		return success[bool, string](n%2 == 0)
	}
	filtered := TryFilterOk(mixed(), keep)
	assertRendered(t, filtered, "Err(a)", "Ok(2)", "Err(bb)", "Err(cannot judge 3)", "Ok(4)", "Err(ccc)")
}

func TestFilterOkAndThen_MatchesTryFilterOk(t *testing.T) {
	keep := func(n int) result.Result[bool, string] { return success[bool, string](n > 2) }
	a := render(FilterOkAndThen(mixed(), keep))
	b := render(TryFilterOk(mixed(), keep))
	if len(a) != len(b) {
		t.Fatalf("got %v and %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d: %s != %s", i, a[i], b[i])
		}
	}
}

func TestTryFilterErr(t *testing.T) {
	keep := func(e string) result.Result[bool, string] {
		if e == "bb" {
			return failure[bool]("rejected bb")
		}
		return success[bool, string](e != "a")
	}
	filtered := TryFilterErr(mixed(), keep)
	assertRendered(t, filtered, "Ok(1)", "Ok(2)", "Err(rejected bb)", "Ok(3)", "Ok(4)", "Err(ccc)")
}

func TestTryFilter_Hint(t *testing.T) {
	keep := func(int) result.Result[bool, string] { return success[bool, string](true) }
	h := iterator.SizeHint(TryFilterOk(mixed(), keep))
	if h.Lower != 0 || !h.Bounded || h.Upper != 7 {
		t.Errorf("hint = %v, want (0, 7)", h)
	}
}
