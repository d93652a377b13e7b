package thunk

import (
	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
	"github.com/gorb-lang/gorb/object"
)

// bind fills the i-th declared argument slot. Binding order is declaration
// order; argv stays the source of truth for what the VM actually passed.
func bind[A any, PA object.VerifiedWrapper[A]](args []abi.Value, i int, argName, method string) Arg[A] {
	var zero A
	if i >= len(args) {
		return Arg[A]{err: errors.ArgumentMissing(argName, PA(&zero).RubyClassName(), method)}
	}
	val, err := object.TryConvert[A, PA](object.AnyObjectFrom(args[i]))
	return Arg[A]{val: val, err: err}
}

// Safe0 generates a callback for a method taking no arguments.
func Safe0[S any, PS object.Wrapper[S]](
	method string,
	body func(self S) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		_ = abi.ParseArguments(argc, argv)
		return object.ValueOf(body(object.To[S, PS](self)))
	}
}

// Safe1 generates a callback for a method declaring one argument. The
// argument reaches the body as a fallible Arg binding.
func Safe1[S, A1 any, PS object.Wrapper[S], PA1 object.VerifiedWrapper[A1]](
	method, arg1 string,
	body func(self S, a1 Arg[A1]) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			bind[A1, PA1](args, 0, arg1, method),
		))
	}
}

// Safe2 generates a callback for a method declaring two arguments.
func Safe2[S, A1, A2 any, PS object.Wrapper[S], PA1 object.VerifiedWrapper[A1], PA2 object.VerifiedWrapper[A2]](
	method, arg1, arg2 string,
	body func(self S, a1 Arg[A1], a2 Arg[A2]) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			bind[A1, PA1](args, 0, arg1, method),
			bind[A2, PA2](args, 1, arg2, method),
		))
	}
}

// Safe3 generates a callback for a method declaring three arguments.
func Safe3[S, A1, A2, A3 any, PS object.Wrapper[S], PA1 object.VerifiedWrapper[A1], PA2 object.VerifiedWrapper[A2], PA3 object.VerifiedWrapper[A3]](
	method, arg1, arg2, arg3 string,
	body func(self S, a1 Arg[A1], a2 Arg[A2], a3 Arg[A3]) object.Object,
) abi.Callback {
	return func(argc abi.Argc, argv *abi.Value, self abi.Value) (ret abi.Value) {
		defer rescue(method, &ret)
		args := abi.ParseArguments(argc, argv)
		return object.ValueOf(body(
			object.To[S, PS](self),
			bind[A1, PA1](args, 0, arg1, method),
			bind[A2, PA2](args, 1, arg2, method),
			bind[A3, PA3](args, 2, arg3, method),
		))
	}
}
