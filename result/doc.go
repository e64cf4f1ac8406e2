// Package result provides the two-variant outcome element carried by result
// sequences: a Result holds either a success value or a failure value, never
// both.
//
// The failure type is a free type parameter, so a Result is not limited to
// Go's error interface:
//
//	r := result.Ok[int, string](42)
//	if v, ok := r.Ok(); ok {
//	    fmt.Println(v)
//	}
//
// Option carries an optionally-present value and is used by sequences whose
// success payload may be empty (see resiter.InnerOkOrElse).
package result
