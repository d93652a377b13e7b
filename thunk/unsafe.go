package thunk

import (
	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/object"
)

// The Unsafe generators skip bounds checks and class checks: each declared
// slot is transmuted directly into its wrapper type. A call with too few
// arguments or a mistyped value is a programmer error on the VM side; the
// resulting trap is still contained at the thunk edge and surfaces as a VM
// exception rather than corrupting the VM's stack.

// Unsafe0 generates an unchecked callback for a method taking no arguments.
func Unsafe0[S any, PS object.Wrapper[S]](
	method string,
	body func(self S) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		_ = abi.ParseArguments(argc, argv)
		return object.ValueOf(body(object.To[S, PS](self)))
	}
}

// Unsafe1 generates an unchecked callback for a method declaring one
// argument.
func Unsafe1[S, A1 any, PS object.Wrapper[S], PA1 object.Wrapper[A1]](
	method string,
	body func(self S, a1 A1) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			object.To[A1, PA1](args[0]),
		))
	}
}

// Unsafe2 generates an unchecked callback for a method declaring two
// arguments.
func Unsafe2[S, A1, A2 any, PS object.Wrapper[S], PA1 object.Wrapper[A1], PA2 object.Wrapper[A2]](
	method string,
	body func(self S, a1 A1, a2 A2) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			object.To[A1, PA1](args[0]),
			object.To[A2, PA2](args[1]),
		))
	}
}

// Unsafe3 generates an unchecked callback for a method declaring three
// arguments.
func Unsafe3[S, A1, A2, A3 any, PS object.Wrapper[S], PA1 object.Wrapper[A1], PA2 object.Wrapper[A2], PA3 object.Wrapper[A3]](
	method string,
	body func(self S, a1 A1, a2 A2, a3 A3) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			object.To[A1, PA1](args[0]),
			object.To[A2, PA2](args[1]),
			object.To[A3, PA3](args[2]),
		))
	}
}
