package thunk

import (
	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
)

// rescue is deferred at the outer edge of every generated thunk. Unwinding
// a Go panic through the VM's C frames is undefined behaviour, so anything
// the body throws is converted into a VM-side raise here. A payload that is
// already a VM exception in flight is re-panicked untouched; the VM's
// dispatch boundary recovers it.
func rescue(method string, ret *abi.Value) {
	r := recover()
	if r == nil {
		return
	}
	if raised, ok := r.(abi.Raised); ok {
		panic(raised)
	}

	vm := abi.Current()
	*ret = vm.NilValue()

	class := exceptionClassFor(vm, r)
	if err, ok := r.(error); ok {
		vm.Raise(class, "%s (in '%s')", err.Error(), method)
	} else {
		vm.Raise(class, "%v (in '%s')", r, method)
	}
}

// exceptionClassFor maps a panic payload to a VM exception class:
// TypeError for failed conversions, ArgumentError for missing argument
// slots, RuntimeError for everything else. A zero return lets the VM pick
// its default error class.
func exceptionClassFor(vm abi.VM, r any) abi.Value {
	name := "RuntimeError"
	if e, ok := r.(*errors.Error); ok {
		switch e.Kind {
		case errors.KindTypeMismatch, errors.KindDataMismatch:
			name = "TypeError"
		case errors.KindArgumentMissing:
			name = "ArgumentError"
		}
	}
	if class, ok := vm.ConstGet(name); ok {
		return class
	}
	return 0
}
