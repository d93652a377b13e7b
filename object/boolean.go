package object

import "github.com/gorb-lang/gorb/abi"

// Boolean wraps a VM boolean.
type Boolean struct {
	Base
}

// NewBoolean returns the VM's true or false.
func NewBoolean(b bool) Boolean {
	return To[Boolean](abi.Current().BoolNew(b))
}

// ToBool reads the boolean back out.
func (b Boolean) ToBool() bool {
	return abi.Current().BoolToB(b.value)
}

// RubyClassName implements Verified.
func (Boolean) RubyClassName() string { return "Boolean" }
