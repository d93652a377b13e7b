package object

import "github.com/gorb-lang/gorb/abi"

// Float wraps a VM float.
type Float struct {
	Base
}

// NewFloat allocates a VM float.
func NewFloat(f float64) Float {
	return To[Float](abi.Current().FloatNew(f))
}

// ToF64 reads the float back out.
func (f Float) ToF64() float64 {
	return abi.Current().FloatToF64(f.value)
}

// RubyClassName implements Verified.
func (Float) RubyClassName() string { return "Float" }
