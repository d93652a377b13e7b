package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConvert Phase = "convert" // checked downcast of a VM value
	PhaseArgs    Phase = "args"    // callback argument binding
	PhaseClass   Phase = "class"   // class lookup and definition
	PhaseData    Phase = "data"    // typed-data wrap/unwrap
	PhaseCall    Phase = "call"    // method invocation through the VM
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindArgumentMissing Kind = "argument_missing"
	KindNotFound        Kind = "not_found"
	KindDataMismatch    Kind = "data_mismatch"
	KindException       Kind = "exception"
)

// Error is the structured error type used throughout the toolkit
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string // VM class the caller asked for
	Actual   string // VM class the value turned out to be
	Arg      string // argument name, for binding errors
	Method   string // method name, for binding errors
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	switch {
	case e.Kind == KindArgumentMissing && e.Arg != "":
		fmt.Fprintf(&b, ": argument '%s: %s' not found for method '%s'", e.Arg, e.Expected, e.Method)
	case e.Kind == KindException && e.Actual != "":
		fmt.Fprintf(&b, ": %s", e.Actual)
	case e.Expected != "" && e.Actual != "":
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Actual)
	case e.Expected != "":
		fmt.Fprintf(&b, ": expected %s", e.Expected)
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Expected sets the VM class the caller asked for
func (b *Builder) Expected(class string) *Builder {
	b.err.Expected = class
	return b
}

// Actual sets the VM class the value turned out to be
func (b *Builder) Actual(class string) *Builder {
	b.err.Actual = class
	return b
}

// Arg sets the argument name
func (b *Builder) Arg(name string) *Builder {
	b.err.Arg = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a failed checked-conversion error
func TypeMismatch(expected, actual string) *Error {
	return &Error{
		Phase:    PhaseConvert,
		Kind:     KindTypeMismatch,
		Expected: expected,
		Actual:   actual,
	}
}

// ArgumentMissing creates an absent-argument error for a callback binding
func ArgumentMissing(argName, argType, methodName string) *Error {
	return &Error{
		Phase:    PhaseArgs,
		Kind:     KindArgumentMissing,
		Expected: argType,
		Arg:      argName,
		Method:   methodName,
	}
}

// ClassNotFound creates a failed class lookup error
func ClassNotFound(name string) *Error {
	return &Error{
		Phase:    PhaseClass,
		Kind:     KindNotFound,
		Expected: name,
		Detail:   fmt.Sprintf("class %q is not defined", name),
	}
}

// DataMismatch creates an error for retrieving a wrapped struct through the
// wrong registry
func DataMismatch(expected, actual string) *Error {
	return &Error{
		Phase:    PhaseData,
		Kind:     KindDataMismatch,
		Expected: expected,
		Actual:   actual,
	}
}

// Exception wraps a VM exception that crossed the boundary inward
func Exception(class, message string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindException,
		Actual: class,
		Detail: message,
	}
}
