package thunk_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
	"github.com/gorb-lang/gorb/object"
	"github.com/gorb-lang/gorb/thunk"
	"github.com/gorb-lang/gorb/vmtest"
)

type Greeter struct {
	object.Base
}

func (Greeter) RubyClassName() string { return "Greeter" }

func bindVM(t *testing.T) *vmtest.VM {
	t.Helper()
	vm := vmtest.New()
	abi.Bind(vm)
	return vm
}

func defineGreeter() object.Class {
	return object.NewClass("Greeter", nil).Define(func(c *object.Definer) {
		c.Def("anonymous_greeting", thunk.Safe0[Greeter](
			"anonymous_greeting",
			func(self Greeter) object.Object {
				return object.NewString("Hello stranger!")
			},
		))
		c.Def("friendly_greeting", thunk.Safe1[Greeter, object.RString](
			"friendly_greeting", "name",
			func(self Greeter, name thunk.Arg[object.RString]) object.Object {
				n := name.Or(object.NewString("Anonymous"))
				return object.NewString("Hello dear " + n.ToString() + "!")
			},
		))
	})
}

func callString(t *testing.T, recv abi.Value, method string, args ...abi.Value) string {
	t.Helper()
	vm := abi.Current()
	out, err := vm.Funcall(recv, method, args...)
	if err != nil {
		t.Fatalf("%s: %v", method, err)
	}
	return vm.StringToUTF8(out)
}

func TestSafeThunkNoArguments(t *testing.T) {
	vm := bindVM(t)

	class := defineGreeter()
	inst, err := vm.Funcall(class.Value(), "new")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := callString(t, inst, "anonymous_greeting"); got != "Hello stranger!" {
		t.Fatalf("anonymous_greeting = %q", got)
	}
}

func TestSafeThunkConvertsArgument(t *testing.T) {
	vm := bindVM(t)

	class := defineGreeter()
	inst, _ := vm.Funcall(class.Value(), "new")

	got := callString(t, inst, "friendly_greeting", vm.StringNewUTF8("Dave"))
	if got != "Hello dear Dave!" {
		t.Fatalf("friendly_greeting = %q", got)
	}
}

func TestSafeThunkDefaultsOnMismatch(t *testing.T) {
	vm := bindVM(t)

	class := defineGreeter()
	inst, _ := vm.Funcall(class.Value(), "new")

	// Wrong class: Or substitutes the default instead of raising.
	got := callString(t, inst, "friendly_greeting", vm.IntFromI64(1))
	if got != "Hello dear Anonymous!" {
		t.Fatalf("friendly_greeting(1) = %q", got)
	}
}

func TestSafeThunkDefaultsOnMissingArgument(t *testing.T) {
	vm := bindVM(t)

	class := defineGreeter()
	inst, _ := vm.Funcall(class.Value(), "new")

	got := callString(t, inst, "friendly_greeting")
	if got != "Hello dear Anonymous!" {
		t.Fatalf("friendly_greeting() = %q", got)
	}
}

func TestArgCarriesBindingError(t *testing.T) {
	vm := bindVM(t)

	var bindErr error
	class := object.NewClass("Probe", nil).Define(func(c *object.Definer) {
		c.Def("take", thunk.Safe1[Probe, object.Fixnum](
			"take", "count",
			func(self Probe, count thunk.Arg[object.Fixnum]) object.Object {
				bindErr = count.Err()
				return nil
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	if _, err := vm.Funcall(inst, "take"); err != nil {
		t.Fatalf("take: %v", err)
	}
	if !stderrors.Is(bindErr, &errors.Error{Phase: errors.PhaseArgs, Kind: errors.KindArgumentMissing}) {
		t.Fatalf("binding error = %v, want argument_missing", bindErr)
	}
	want := "[args] argument_missing: argument 'count: Fixnum' not found for method 'take'"
	if bindErr.Error() != want {
		t.Fatalf("binding error = %q, want %q", bindErr.Error(), want)
	}

	if _, err := vm.Funcall(inst, "take", vm.StringNewUTF8("three")); err != nil {
		t.Fatalf("take: %v", err)
	}
	if !stderrors.Is(bindErr, &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindTypeMismatch}) {
		t.Fatalf("binding error = %v, want type_mismatch", bindErr)
	}
}

type Probe struct {
	object.Base
}

func (Probe) RubyClassName() string { return "Probe" }

func TestMustRaisesTypeError(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("Strict", nil).Define(func(c *object.Definer) {
		c.Def("double", thunk.Safe1[Strict, object.Fixnum](
			"double", "n",
			func(self Strict, n thunk.Arg[object.Fixnum]) object.Object {
				return object.NewFixnum(thunk.Must(n).ToI64() * 2)
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	out, err := vm.Funcall(inst, "double", vm.IntFromI64(21))
	if err != nil {
		t.Fatalf("double: %v", err)
	}
	if vm.IntToI64(out) != 42 {
		t.Fatalf("double(21) = %d", vm.IntToI64(out))
	}

	_, err = vm.Funcall(inst, "double", vm.StringNewUTF8("x"))
	if err == nil {
		t.Fatal("mismatched Must did not raise")
	}
	if !strings.Contains(err.Error(), "TypeError") {
		t.Fatalf("err = %v, want TypeError", err)
	}
	if !strings.Contains(err.Error(), "(in 'double')") {
		t.Fatalf("err = %v, missing method context", err)
	}
}

type Strict struct {
	object.Base
}

func (Strict) RubyClassName() string { return "Strict" }

func TestMustRaisesArgumentError(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("Strict", nil).Define(func(c *object.Definer) {
		c.Def("need", thunk.Safe1[Strict, object.RString](
			"need", "value",
			func(self Strict, value thunk.Arg[object.RString]) object.Object {
				return thunk.Must(value)
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	_, err := vm.Funcall(inst, "need")
	if err == nil {
		t.Fatal("missing Must did not raise")
	}
	if !strings.Contains(err.Error(), "ArgumentError") {
		t.Fatalf("err = %v, want ArgumentError", err)
	}
}

func TestBodyPanicBecomesVMException(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("Volatile", nil).Define(func(c *object.Definer) {
		c.Def("explode", thunk.Safe0[Volatile](
			"explode",
			func(self Volatile) object.Object {
				panic("wires crossed")
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	// The panic must not cross the call boundary as a Go panic.
	_, err := vm.Funcall(inst, "explode")
	if err == nil {
		t.Fatal("body panic vanished")
	}
	if !strings.Contains(err.Error(), "RuntimeError") || !strings.Contains(err.Error(), "wires crossed") {
		t.Fatalf("err = %v", err)
	}
}

func TestRaisedExceptionPassesThroughUntouched(t *testing.T) {
	vm := bindVM(t)

	typeError, _ := vm.ConstGet("TypeError")
	class := object.NewClass("Volatile", nil).Define(func(c *object.Definer) {
		c.Def("reraise", thunk.Safe0[Volatile](
			"reraise",
			func(self Volatile) object.Object {
				abi.Current().Raise(typeError, "original message")
				return nil
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	_, err := vm.Funcall(inst, "reraise")
	if err == nil {
		t.Fatal("raise vanished")
	}
	// No thunk wrapping: the message is exactly what Raise produced.
	if !strings.Contains(err.Error(), "original message") || strings.Contains(err.Error(), "(in '") {
		t.Fatalf("err = %v", err)
	}
}

type Volatile struct {
	object.Base
}

func (Volatile) RubyClassName() string { return "Volatile" }

func TestNilBodyReturnIsVMNil(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("Quiet", nil).Define(func(c *object.Definer) {
		c.Def("hush", thunk.Safe0[Quiet](
			"hush",
			func(self Quiet) object.Object {
				return object.NewNil()
			},
		))
		c.Def("hush_nil", thunk.Safe0[Quiet](
			"hush_nil",
			func(self Quiet) object.Object {
				return nil
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	for _, method := range []string{"hush", "hush_nil"} {
		out, err := vm.Funcall(inst, method)
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if out != vm.NilValue() {
			t.Fatalf("%s returned %d, want nil", method, out)
		}
	}
}

type Quiet struct {
	object.Base
}

func (Quiet) RubyClassName() string { return "Quiet" }

func TestUnsafeThunkOnReopenedBuiltin(t *testing.T) {
	vm := bindVM(t)

	// Reopen the built-in String class with an unchecked predicate.
	object.NewClass("String", nil).Define(func(c *object.Definer) {
		c.Def("string_length_equals?", thunk.Unsafe1[object.RString, object.Fixnum](
			"string_length_equals?",
			func(self object.RString, n object.Fixnum) object.Object {
				return object.NewBoolean(int64(len(self.ToString())) == n.ToI64())
			},
		))
	})

	str := vm.StringNewUTF8("hello")
	out, err := vm.Funcall(str, "string_length_equals?", vm.IntFromI64(5))
	if err != nil {
		t.Fatalf("string_length_equals?: %v", err)
	}
	if !vm.BoolToB(out) {
		t.Fatal("string_length_equals?(5) = false for a 5-byte string")
	}

	out, err = vm.Funcall(str, "string_length_equals?", vm.IntFromI64(3))
	if err != nil {
		t.Fatalf("string_length_equals?: %v", err)
	}
	if vm.BoolToB(out) {
		t.Fatal("string_length_equals?(3) = true for a 5-byte string")
	}
}

func TestUnsafeThunkTrapIsContained(t *testing.T) {
	vm := bindVM(t)

	object.NewClass("String", nil).Define(func(c *object.Definer) {
		c.Def("string_length_equals?", thunk.Unsafe1[object.RString, object.Fixnum](
			"string_length_equals?",
			func(self object.RString, n object.Fixnum) object.Object {
				return object.NewBoolean(int64(len(self.ToString())) == n.ToI64())
			},
		))
	})

	// Too few arguments traps inside the thunk; the trap must surface as a
	// VM exception, not a Go panic.
	_, err := vm.Funcall(vm.StringNewUTF8("x"), "string_length_equals?")
	if err == nil {
		t.Fatal("unchecked trap vanished")
	}
	if !strings.Contains(err.Error(), "RuntimeError") {
		t.Fatalf("err = %v, want RuntimeError", err)
	}
}

func TestHashOptionsExtraction(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("RubyServer", nil).Define(func(c *object.Definer) {
		c.Def("configure", thunk.Safe1[ServerObj, object.Hash](
			"configure", "options",
			func(self ServerObj, options thunk.Arg[object.Hash]) object.Object {
				opts := options.Or(object.NewHash())
				port, err := object.TryConvert[object.Fixnum](opts.At(object.NewSymbol("port")))
				if err != nil {
					port = object.NewFixnum(8080)
				}
				return port
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	opts := vm.HashNew()
	vm.HashAset(opts, vm.SymbolNew("port"), vm.IntFromI64(3000))
	out, err := vm.Funcall(inst, "configure", opts)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if vm.IntToI64(out) != 3000 {
		t.Fatalf("configure(port: 3000) = %d", vm.IntToI64(out))
	}

	// No :port key: the value under the key is nil, conversion fails, the
	// default applies.
	out, err = vm.Funcall(inst, "configure", vm.HashNew())
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if vm.IntToI64(out) != 8080 {
		t.Fatalf("configure({}) = %d, want 8080", vm.IntToI64(out))
	}

	// :port bound to a non-integer: conversion fails, the default applies.
	opts = vm.HashNew()
	vm.HashAset(opts, vm.SymbolNew("port"), vm.StringNewUTF8("nope"))
	out, err = vm.Funcall(inst, "configure", opts)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if vm.IntToI64(out) != 8080 {
		t.Fatalf("configure(port: \"nope\") = %d, want 8080", vm.IntToI64(out))
	}

	// Not a hash at all: the argument binding fails, Or substitutes an
	// empty hash, same default path.
	out, err = vm.Funcall(inst, "configure", vm.StringNewUTF8("not a hash"))
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if vm.IntToI64(out) != 8080 {
		t.Fatalf("configure(\"not a hash\") = %d, want 8080", vm.IntToI64(out))
	}

	// No options at all: same default path.
	out, err = vm.Funcall(inst, "configure")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if vm.IntToI64(out) != 8080 {
		t.Fatalf("configure() = %d, want 8080", vm.IntToI64(out))
	}
}

type ServerObj struct {
	object.Base
}

func (ServerObj) RubyClassName() string { return "RubyServer" }

func TestSafe2BindsInDeclarationOrder(t *testing.T) {
	vm := bindVM(t)

	class := object.NewClass("Join", nil).Define(func(c *object.Definer) {
		c.Def("pair", thunk.Safe2[Probe, object.RString, object.Fixnum](
			"pair", "label", "count",
			func(self Probe, label thunk.Arg[object.RString], count thunk.Arg[object.Fixnum]) object.Object {
				l := thunk.Must(label)
				n := thunk.Must(count)
				out := object.NewString(l.ToString() + ":")
				if n.ToI64() > 0 {
					out = out.Concat(object.NewString("some"))
				}
				return out
			},
		))
	})
	inst, _ := vm.Funcall(class.Value(), "new")

	out, err := vm.Funcall(inst, "pair", vm.StringNewUTF8("jobs"), vm.IntFromI64(2))
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if got := vm.StringToUTF8(out); got != "jobs:some" {
		t.Fatalf("pair = %q", got)
	}
}
