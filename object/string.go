package object

import "github.com/gorb-lang/gorb/abi"

// RString wraps a VM string.
type RString struct {
	Base
}

// NewString allocates a VM string holding a copy of s.
func NewString(s string) RString {
	return To[RString](abi.Current().StringNewUTF8(s))
}

// ToString copies the VM string out as a Go string.
func (s RString) ToString() string {
	return abi.Current().StringToUTF8(s.value)
}

// Concat appends other's bytes to this string in place and returns the
// receiver for chaining.
func (s RString) Concat(other RString) RString {
	abi.Current().StringConcat(s.value, other.value)
	return s
}

// RubyClassName implements Verified.
func (RString) RubyClassName() string { return "String" }
