// Package errors provides structured error values with machine-readable
// codes. Adaptors never create failures on their own; these errors are used
// by the helpers that do, such as the validation adaptor or the factories
// handed to resiter.InnerOkOrElse.
package errors
