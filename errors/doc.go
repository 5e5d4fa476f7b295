// Package errors provides structured error types for the textcodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the encoding involved, the code-unit offset, the offending
// value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTranscode, errors.KindIllFormed).
//		Encoding("utf-8").
//		Offset(17).
//		Detail("ill-formed sequence").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IllFormed(errors.PhaseDecode, "utf-8", 17)
//	err := errors.InvalidScalar(errors.PhaseLift, 0xD800)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
