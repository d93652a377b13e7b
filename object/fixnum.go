package object

import "github.com/gorb-lang/gorb/abi"

// Fixnum wraps a VM integer.
type Fixnum struct {
	Base
}

// NewFixnum allocates a VM integer.
func NewFixnum(n int64) Fixnum {
	return To[Fixnum](abi.Current().IntFromI64(n))
}

// ToI64 reads the integer back out.
func (f Fixnum) ToI64() int64 {
	return abi.Current().IntToI64(f.value)
}

// RubyClassName implements Verified.
func (Fixnum) RubyClassName() string { return "Fixnum" }
