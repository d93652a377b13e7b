package vmtest

import (
	"fmt"
	"unsafe"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
)

// RaisedError is the panic payload of Raise. It satisfies abi.Raised;
// Funcall is the only recovery site.
type RaisedError struct {
	class     abi.Value
	className string
	message   string
}

// Error implements the error interface.
func (e *RaisedError) Error() string {
	return e.className + ": " + e.message
}

// ExceptionClass implements abi.Raised.
func (e *RaisedError) ExceptionClass() abi.Value {
	return e.class
}

// Raise implements abi.VM. It does not return.
func (vm *VM) Raise(class abi.Value, format string, args ...any) {
	if class == 0 {
		class = vm.runtimeError
	}
	panic(&RaisedError{
		class:     class,
		className: vm.ClassName(class),
		message:   fmt.Sprintf(format, args...),
	})
}

// Funcall implements abi.VM. It is the safe-call entry point: an exception
// raised anywhere below is recovered here and returned as an error, so no
// native frame above ever sees a pending exception.
func (vm *VM) Funcall(recv abi.Value, name string, args ...abi.Value) (out abi.Value, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ex, ok := r.(*RaisedError); ok {
			out = vm.nilV
			err = errors.Exception(ex.className, ex.message)
			return
		}
		panic(r)
	}()

	if fn := vm.lookupMethod(recv, name); fn != nil {
		return vm.invoke(fn, recv, args), nil
	}

	// new/initialize protocol for classes without a custom singleton new.
	if name == "new" && vm.get(recv).kind == kindClass {
		return vm.newInstance(recv, args), nil
	}

	noMethod, _ := vm.consts["NoMethodError"]
	vm.Raise(noMethod, "undefined method '%s' for %s", name, vm.describe(recv))
	return vm.nilV, nil // unreachable
}

// lookupMethod resolves name against recv's singleton, then up the class
// chain.
func (vm *VM) lookupMethod(recv abi.Value, name string) abi.Callback {
	obj := vm.get(recv)
	if fn, ok := obj.smeths[name]; ok {
		return fn
	}
	for c := obj.class; c != 0; c = vm.get(c).super {
		if fn, ok := vm.get(c).methods[name]; ok {
			return fn
		}
	}
	return nil
}

// invoke calls a native callback with the VM's calling convention.
func (vm *VM) invoke(fn abi.Callback, recv abi.Value, args []abi.Value) abi.Value {
	var argv *abi.Value
	if len(args) > 0 {
		argv = &args[0]
	}
	return fn(abi.Argc(len(args)), argv, recv)
}

// newInstance allocates a plain instance of class and runs initialize when
// one is defined.
func (vm *VM) newInstance(class abi.Value, args []abi.Value) abi.Value {
	inst := vm.alloc(&heapObject{kind: kindObject, class: class})
	if fn := vm.lookupMethod(inst, "initialize"); fn != nil {
		vm.invoke(fn, inst, args)
	}
	return inst
}

func (vm *VM) describe(v abi.Value) string {
	obj := vm.get(v)
	switch obj.kind {
	case kindClass, kindModule:
		return obj.name
	default:
		return "an instance of " + vm.ClassName(obj.class)
	}
}

// --- typed data ---------------------------------------------------------

// TypedDataWrap implements abi.VM.
func (vm *VM) TypedDataWrap(class abi.Value, data unsafe.Pointer, dt *abi.DataType) abi.Value {
	if vm.get(class).kind != kindClass {
		vm.Raise(vm.runtimeError, "typed data owner must be a class")
	}
	return vm.alloc(&heapObject{
		kind:  kindData,
		class: class,
		data:  data,
		dtype: dt,
	})
}

// TypedDataGet implements abi.VM. Descriptors are compared by address; a
// mismatch means the caller asked for a different native type than the one
// wrapped.
func (vm *VM) TypedDataGet(obj abi.Value, dt *abi.DataType) (unsafe.Pointer, error) {
	o := vm.get(obj)
	if o.kind != kindData {
		return nil, errors.DataMismatch(dt.WrapStructName, vm.ClassName(o.class))
	}
	if o.dtype != dt {
		return nil, errors.DataMismatch(dt.WrapStructName, o.dtype.WrapStructName)
	}
	return o.data, nil
}
