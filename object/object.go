package object

import (
	"github.com/gorb-lang/gorb/abi"
)

// Object is the capability every wrapper satisfies: yielding the underlying
// VM value. Generic code (Push, Store, Wrap, ...) accepts any implementor.
type Object interface {
	Value() abi.Value
}

// Verified is an Object whose VM class is known, making it a target for
// checked conversion. Built-in wrappers implement it; user class wrappers
// add the one-line RubyClassName method next to their Base embedding.
type Verified interface {
	Object

	// RubyClassName names the VM class this wrapper represents.
	RubyClassName() string
}

// Wrapper constrains a pointer to a wrapper type. Any struct embedding Base
// satisfies it.
type Wrapper[T any] interface {
	*T
	Object
	setRaw(abi.Value)
}

// VerifiedWrapper constrains a pointer to a wrapper with a known VM class.
type VerifiedWrapper[T any] interface {
	Wrapper[T]
	Verified
}

// Base carries the single VM value every wrapper holds. Embed it to make a
// struct a wrapper.
type Base struct {
	value abi.Value
}

// Value yields the underlying VM value.
func (b Base) Value() abi.Value {
	return b.value
}

func (b *Base) setRaw(v abi.Value) {
	b.value = v
}

// Class returns the VM class of the wrapped value.
func (b Base) Class() Class {
	return To[Class](abi.Current().ClassOf(b.value))
}

// IsNil reports whether the wrapped value is the VM's nil.
func (b Base) IsNil() bool {
	return b.value == abi.Current().NilValue()
}

// Send invokes a method on the wrapped value through the VM's safe-call
// entry point. An exception raised during the call comes back as an error.
func (b Base) Send(name string, args ...Object) (AnyObject, error) {
	vals := make([]abi.Value, len(args))
	for i, a := range args {
		vals[i] = ValueOf(a)
	}
	v, err := abi.Current().Funcall(b.value, name, vals...)
	if err != nil {
		return AnyObject{}, err
	}
	return AnyObjectFrom(v), nil
}

// ValueOf yields o's VM value, substituting the VM's nil for a nil Object.
func ValueOf(o Object) abi.Value {
	if o == nil {
		return abi.Current().NilValue()
	}
	return o.Value()
}

// AnyObject is a VM value of unknown class. It is the result type of every
// operation whose VM-side class cannot be known statically: argument slots,
// array and hash reads, Send results.
type AnyObject struct {
	Base
}

// AnyObjectFrom wraps a raw VM value.
func AnyObjectFrom(v abi.Value) AnyObject {
	return To[AnyObject](v)
}

// RubyClassName implements Verified. Every VM value is a kind of Object, so
// checked conversion to AnyObject always succeeds.
func (AnyObject) RubyClassName() string { return "Object" }
