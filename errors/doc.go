// Package errors provides the structured error type returned by emit,
// optimize, vectorize, and probe.
//
// Errors are categorized by Phase (which stage produced the error) and Kind
// (the error category within that phase). The Error type carries a node
// path, the offending value, and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEmit, errors.KindUnresolvedName).
//		Path("func", "add3", "body", "2").
//		Value("$missing").
//		Detail("local %q not declared", "$missing").
//		Build()
//
// Or use the convenience constructors for the five error modes emit can
// produce:
//
//	err := errors.UnknownOpcode(path, "i32.frobnicate")
//	err := errors.EncodingOverflow(path, "memarg offset exceeds u32", offset)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
