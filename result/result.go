package result

import "fmt"

// Result is an outcome element: either a success value of type O or a
// failure value of type E. The zero Result is Ok with the zero O.
type Result[O, E any] struct {
	ok    O
	err   E
	isErr bool
}

// Ok returns a success Result holding v.
func Ok[O, E any](v O) Result[O, E] {
	return Result[O, E]{ok: v}
}

// Err returns a failure Result holding e.
func Err[O, E any](e E) Result[O, E] {
	return Result[O, E]{err: e, isErr: true}
}

// Of converts a Go (value, error) pair into a Result. A non-nil err wins.
func Of[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Err[V](err)
	}
	return Ok[V, error](v)
}

// IsOk reports whether r holds a success value.
func (r Result[O, E]) IsOk() bool { return !r.isErr }

// IsErr reports whether r holds a failure value.
func (r Result[O, E]) IsErr() bool { return r.isErr }

// Ok returns the success value and true, or the zero O and false.
func (r Result[O, E]) Ok() (O, bool) {
	if r.isErr {
		var zero O
		return zero, false
	}
	return r.ok, true
}

// Err returns the failure value and true, or the zero E and false.
func (r Result[O, E]) Err() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unpack returns both payloads and whether r is a success. Only the payload
// matching the returned flag is meaningful.
func (r Result[O, E]) Unpack() (O, E, bool) {
	return r.ok, r.err, !r.isErr
}

// OkOr returns the success value, or fallback when r is a failure.
func (r Result[O, E]) OkOr(fallback O) O {
	if r.isErr {
		return fallback
	}
	return r.ok
}

func (r Result[O, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.ok)
}

// GetOk is the function form of Result.Ok, convenient as a callback.
func GetOk[O, E any](r Result[O, E]) (O, bool) { return r.Ok() }

// GetErr is the function form of Result.Err, convenient as a callback.
func GetErr[O, E any](r Result[O, E]) (E, bool) { return r.Err() }

// MapOk applies fn to a success value and leaves a failure untouched.
func MapOk[O, O2, E any](r Result[O, E], fn func(O) O2) Result[O2, E] {
	if r.isErr {
		return Err[O2](r.err)
	}
	return Ok[O2, E](fn(r.ok))
}

// MapErr applies fn to a failure value and leaves a success untouched.
func MapErr[O, E, E2 any](r Result[O, E], fn func(E) E2) Result[O, E2] {
	if r.isErr {
		return Err[O](fn(r.err))
	}
	return Ok[O, E2](r.ok)
}

// AndThen applies fn to a success value and returns its outcome directly,
// so fn may turn a success into a failure.
func AndThen[O, O2, E any](r Result[O, E], fn func(O) Result[O2, E]) Result[O2, E] {
	if r.isErr {
		return Err[O2](r.err)
	}
	return fn(r.ok)
}

// OrElse applies fn to a failure value and returns its outcome directly,
// so fn may recover a failure into a success.
func OrElse[O, E, E2 any](r Result[O, E], fn func(E) Result[O, E2]) Result[O, E2] {
	if !r.isErr {
		return Ok[O, E2](r.ok)
	}
	return fn(r.err)
}

// InnerOkOrElse collapses a success holding an optional value. A present
// value becomes a plain success; an absent one becomes the failure built by
// orElse. Failures pass through and orElse is not called for them.
func InnerOkOrElse[T, E any](r Result[Option[T], E], orElse func() E) Result[T, E] {
	if r.isErr {
		return Err[T](r.err)
	}
	if v, ok := r.ok.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](orElse())
}
