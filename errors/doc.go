// Package errors provides structured error types for the tlv8 tooling.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the tag path from the stream
// root to the offending element and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindWrongType).
//		Path("10", "11").
//		Detail("expected an integer width").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseParse, path, "content shorter than declared")
//	err := errors.NotFound(errors.PhaseProfile, "context", "pairing")
//
// All errors implement the standard error interface and support errors.Is/As.
// The core reader package does not use these types; it reports sentinel
// errors that callers can wrap.
package errors
