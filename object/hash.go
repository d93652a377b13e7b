package object

import "github.com/gorb-lang/gorb/abi"

// Hash wraps a VM hash.
type Hash struct {
	Base
}

// NewHash allocates an empty VM hash.
func NewHash() Hash {
	return To[Hash](abi.Current().HashNew())
}

// At returns the value stored under key, or the VM's nil.
func (h Hash) At(key Object) AnyObject {
	return AnyObjectFrom(abi.Current().HashAref(h.value, ValueOf(key)))
}

// Store associates key with value and returns value.
func (h Hash) Store(key, value Object) AnyObject {
	return AnyObjectFrom(abi.Current().HashAset(h.value, ValueOf(key), ValueOf(value)))
}

// Each yields every pair in insertion order.
func (h Hash) Each(fn func(key, value AnyObject)) {
	abi.Current().HashForeach(h.value, func(k, v abi.Value) bool {
		fn(AnyObjectFrom(k), AnyObjectFrom(v))
		return true
	})
}

// RubyClassName implements Verified.
func (Hash) RubyClassName() string { return "Hash" }
