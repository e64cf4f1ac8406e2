// Package validation checks the success values of a result sequence.
//
// Struct tag validation uses the validator library and reports failures as
// *errors.AppError with per-field details:
//
//	type Row struct {
//	    ID    string `json:"id" validate:"required,uuid"`
//	    Count int    `json:"count" validate:"gte=0"`
//	}
//	rows = validation.ValidateOk(rows)
//
// Programmatic checks collect field errors on a Validator:
//
//	rows = validation.Check(rows, func(r Row, v *validation.Validator) {
//	    v.RequiredUUID("id", r.ID).Min("count", r.Count, 0)
//	})
package validation
