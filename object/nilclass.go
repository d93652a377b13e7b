package object

import "github.com/gorb-lang/gorb/abi"

// NilClass wraps the VM's nil. It is the conversion target for "no return
// value"; a callback declared to return NilClass always mints a fresh nil.
type NilClass struct {
	Base
}

// NewNil returns the VM's nil.
func NewNil() NilClass {
	return To[NilClass](abi.Current().NilValue())
}

// RubyClassName implements Verified.
func (NilClass) RubyClassName() string { return "NilClass" }
