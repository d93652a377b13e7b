package vmtest

import (
	"go.uber.org/zap"

	"github.com/gorb-lang/gorb/abi"
)

// GC runs a full mark-and-sweep collection. Roots are the registered
// constants (classes and modules), the interned symbols, the boolean and
// nil singletons, and the keep list — the values the native side still
// holds. Swept typed-data objects run their free hook exactly once.
func (vm *VM) GC(keep ...abi.Value) {
	for _, obj := range vm.objects {
		obj.marked = false
	}

	vm.gcActive = true
	vm.Mark(vm.nilV)
	vm.Mark(vm.trueV)
	vm.Mark(vm.falseV)
	for _, v := range vm.consts {
		vm.Mark(v)
	}
	for _, v := range vm.symbols {
		vm.Mark(v)
	}
	for _, v := range keep {
		vm.Mark(v)
	}
	vm.gcActive = false

	swept := 0
	for v, obj := range vm.objects {
		if obj.marked {
			continue
		}
		if obj.kind == kindData && obj.dtype != nil && obj.dtype.Function.Free != nil {
			obj.dtype.Function.Free(obj.data)
		}
		delete(vm.objects, v)
		swept++
	}

	abi.Logger().Debug("collection finished",
		zap.Int("swept", swept),
		zap.Int("live", len(vm.objects)))
}

// Mark marks v and everything reachable from it. Outside a collection it
// is only valid from a typed-data mark hook, which the collector invokes
// during the mark phase.
func (vm *VM) Mark(v abi.Value) {
	if !vm.gcActive {
		panic("vmtest: Mark outside collection")
	}
	obj := vm.objects[v]
	if obj == nil || obj.marked {
		return
	}
	obj.marked = true

	vm.Mark(obj.class)
	if obj.super != 0 {
		vm.Mark(obj.super)
	}
	for _, e := range obj.elems {
		vm.Mark(e)
	}
	for _, p := range obj.pairs {
		vm.Mark(p.key)
		vm.Mark(p.val)
	}
	if obj.kind == kindData && obj.dtype != nil && obj.dtype.Function.Mark != nil {
		obj.dtype.Function.Mark(obj.data)
	}
}
