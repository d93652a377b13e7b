package thunk

// Arg is the fallible binding a safe thunk hands the body for each declared
// argument: either the converted wrapper or the reason conversion failed.
type Arg[T any] struct {
	val T
	err error
}

// Get returns the converted wrapper or the binding error.
func (a Arg[T]) Get() (T, error) {
	return a.val, a.err
}

// Or returns the converted wrapper, or def when the binding failed.
func (a Arg[T]) Or(def T) T {
	if a.err != nil {
		return def
	}
	return a.val
}

// OK reports whether the binding succeeded.
func (a Arg[T]) OK() bool {
	return a.err == nil
}

// Err returns the binding error, if any.
func (a Arg[T]) Err() error {
	return a.err
}

// Must unwraps a binding, panicking with its error when it failed. The
// panic is caught at the thunk edge and raised as the matching VM exception
// (TypeError for a mismatch, ArgumentError for a missing slot), so Must is
// the strict counterpart of Or.
func Must[T any](a Arg[T]) T {
	if a.err != nil {
		panic(a.err)
	}
	return a.val
}
