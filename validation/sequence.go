package validation

import (
	"github.com/kbukum/resultiter/resiter"
	"github.com/kbukum/resultiter/result"
)

// ValidateOk turns every success that fails struct tag validation into a
// failure carrying the validation error. Failures pass through.
func ValidateOk[O any](it resiter.Iterator[O, error]) resiter.Iterator[O, error] {
	return resiter.TryMapOk(it, func(v O) result.Result[O, error] {
		if err := Validate(v); err != nil {
			return result.Err[O](err)
		}
		return result.Ok[O, error](v)
	})
}

// Check runs fn on a fresh Validator for every success. A success with any
// recorded field error becomes a failure.
func Check[O any](it resiter.Iterator[O, error], fn func(O, *Validator)) resiter.Iterator[O, error] {
	return resiter.TryMapOk(it, func(v O) result.Result[O, error] {
		val := New()
		fn(v, val)
		if err := val.Err(); err != nil {
			return result.Err[O](err)
		}
		return result.Ok[O, error](v)
	})
}

// DropInvalid discards successes that fail struct tag validation instead of
// failing them.
func DropInvalid[O any](it resiter.Iterator[O, error]) resiter.Iterator[O, error] {
	return resiter.FilterOk(it, func(v O) bool { return Validate(v) == nil })
}
