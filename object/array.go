package object

import "github.com/gorb-lang/gorb/abi"

// Array wraps a VM array.
type Array struct {
	Base
}

// NewArray allocates an empty VM array.
func NewArray() Array {
	return To[Array](abi.Current().ArrayNew())
}

// At returns the element at index. Negative indices count from the end;
// out-of-bounds yields the VM's nil.
func (a Array) At(index int64) AnyObject {
	return AnyObjectFrom(abi.Current().ArrayEntry(a.value, index))
}

// Push appends item and returns the receiver for chaining.
func (a Array) Push(item Object) Array {
	abi.Current().ArrayPush(a.value, ValueOf(item))
	return a
}

// Length returns the number of elements.
func (a Array) Length() int64 {
	return abi.Current().ArrayLen(a.value)
}

// RubyClassName implements Verified.
func (Array) RubyClassName() string { return "Array" }
