package object

import (
	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
)

// To mints a wrapper of type T over v without checking v's class.
// Defined behaviour only when the caller has proved the class externally;
// provided for hot paths and for values whose class is guaranteed by
// construction.
func To[T any, PT Wrapper[T]](v abi.Value) T {
	var t T
	PT(&t).setRaw(v)
	return t
}

// TryConvert checks obj's class against T's VM class and mints a T on
// match. On mismatch it returns a TypeMismatch error naming both classes.
// Conversion is side-effect-free and may be re-invoked; inheritance is
// honoured (a subclass instance converts to its ancestor's wrapper).
func TryConvert[T any, PT VerifiedWrapper[T]](obj Object) (T, error) {
	var t T
	want := PT(&t).RubyClassName()

	vm := abi.Current()
	class, ok := vm.ConstGet(want)
	if !ok {
		return t, errors.ClassNotFound(want)
	}

	v := ValueOf(obj)
	if !vm.IsKindOf(v, class) {
		actual := vm.ClassName(vm.ClassOf(v))
		return t, errors.TypeMismatch(want, actual)
	}

	PT(&t).setRaw(v)
	return t, nil
}
