// Package errors provides the structured error types used throughout the
// toolkit.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the context a caller needs to
// decide between defaulting and raising: expected and actual class names
// for conversions, argument and method names for callback binding.
//
// Use the convenience constructors for the common patterns:
//
//	err := errors.TypeMismatch("Fixnum", "String")
//	err := errors.ArgumentMissing("name", "RString", "friendly_greeting")
//
// or the Builder when extra detail is needed:
//
//	err := errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
//		Expected("Hash").
//		Actual("NilClass").
//		Detail("options argument").
//		Build()
//
// All errors implement the standard error interface and support
// errors.Is/As; two Errors match when Phase and Kind agree.
package errors
