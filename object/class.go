package object

import (
	"go.uber.org/zap"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
)

// Class wraps a VM value denoting a class.
type Class struct {
	Base
}

// NewClass defines a top-level VM class, or reopens it if the name is
// already bound. A nil parent inherits from the VM's base object class.
func NewClass(name string, parent *Class) Class {
	vm := abi.Current()
	var p abi.Value
	if parent != nil {
		p = parent.value
	}
	c := To[Class](vm.DefineClass(name, p))
	abi.Logger().Debug("defined class", zap.String("class", name))
	return c
}

// NewClassUnder defines a class namespaced inside outer.
func NewClassUnder(outer Class, name string, parent *Class) Class {
	vm := abi.Current()
	var p abi.Value
	if parent != nil {
		p = parent.value
	}
	c := To[Class](vm.DefineClassUnder(outer.value, name, p))
	abi.Logger().Debug("defined nested class",
		zap.String("outer", outer.Name()),
		zap.String("class", name))
	return c
}

// ClassFromExisting looks up an already-defined class by name.
func ClassFromExisting(name string) (Class, error) {
	vm := abi.Current()
	v, ok := vm.ConstGet(name)
	if !ok {
		return Class{}, errors.ClassNotFound(name)
	}
	return To[Class](v), nil
}

// Name returns the class name as known to the VM.
func (c Class) Name() string {
	return abi.Current().ClassName(c.value)
}

// New instantiates the class through its "new" method.
func (c Class) New(args ...Object) (AnyObject, error) {
	return c.Send("new", args...)
}

// Define runs fn against a scoped definer for this class and returns the
// class for chaining.
//
//	object.NewClass("Greeter", nil).Define(func(c *object.Definer) {
//	    c.Def("anonymous_greeting", anonymousGreeting)
//	})
func (c Class) Define(fn func(d *Definer)) Class {
	d := Definer{class: c}
	fn(&d)
	return c
}

// RubyClassName implements Verified.
func (Class) RubyClassName() string { return "Class" }

// Definer registers methods on one class. It is only handed out by
// Class.Define; registration failures (reserved names, redefinitions the VM
// rejects) surface as VM exceptions per the VM's extension conventions.
type Definer struct {
	class Class
}

// Def defines an instance method.
func (d *Definer) Def(name string, fn abi.Callback) {
	abi.Current().DefineMethod(d.class.value, name, fn)
	abi.Logger().Debug("defined method",
		zap.String("class", d.class.Name()),
		zap.String("method", name))
}

// DefSelf defines a singleton (class-side) method.
func (d *Definer) DefSelf(name string, fn abi.Callback) {
	abi.Current().DefineSingletonMethod(d.class.value, name, fn)
	abi.Logger().Debug("defined singleton method",
		zap.String("class", d.class.Name()),
		zap.String("method", name))
}
