package abi

import "unsafe"

// VM is the narrow set of entry points the toolkit calls. Implementations
// bridge to the actual runtime; the reference implementation lives in
// package vmtest.
//
// Any method that allocates is a potential collection point.
type VM interface {
	// NilValue returns the VM's nil.
	NilValue() Value

	// BoolNew returns the VM's true or false.
	BoolNew(b bool) Value

	// IntFromI64 allocates a VM integer.
	IntFromI64(n int64) Value

	// IntToI64 reads a VM integer. The Value must denote an integer.
	IntToI64(v Value) int64

	// FloatNew allocates a VM float.
	FloatNew(f float64) Value

	// FloatToF64 reads a VM float.
	FloatToF64(v Value) float64

	// BoolToB reads a VM boolean.
	BoolToB(v Value) bool

	// StringNewUTF8 allocates a VM string holding a copy of s.
	StringNewUTF8(s string) Value

	// StringToUTF8 copies a VM string out.
	StringToUTF8(v Value) string

	// StringConcat appends the bytes of b to string a and returns a.
	StringConcat(a, b Value) Value

	// SymbolNew interns a symbol.
	SymbolNew(name string) Value

	// SymbolName returns the name a symbol was interned under.
	SymbolName(v Value) string

	// ArrayNew allocates an empty array.
	ArrayNew() Value

	// ArrayEntry returns the element at index. Negative indices count from
	// the end; out-of-bounds yields the VM's nil.
	ArrayEntry(ary Value, index int64) Value

	// ArrayPush appends item to ary and returns ary.
	ArrayPush(ary, item Value) Value

	// ArrayLen returns the number of elements in ary.
	ArrayLen(ary Value) int64

	// HashNew allocates an empty hash.
	HashNew() Value

	// HashAref returns the value stored under key, or the VM's nil.
	HashAref(hash, key Value) Value

	// HashAset stores value under key and returns value.
	HashAset(hash, key, value Value) Value

	// HashForeach yields each pair in insertion order until fn returns
	// false.
	HashForeach(hash Value, fn func(key, value Value) bool)

	// DefineClass defines (or reopens) a top-level class. A zero parent
	// means the VM's base object class.
	DefineClass(name string, parent Value) Value

	// DefineClassUnder defines a class namespaced inside outer.
	DefineClassUnder(outer Value, name string, parent Value) Value

	// DefineModule defines (or reopens) a top-level module.
	DefineModule(name string) Value

	// ConstGet looks up a top-level constant by name.
	ConstGet(name string) (Value, bool)

	// ClassOf returns the class of v.
	ClassOf(v Value) Value

	// ClassName returns the name of a class or module value.
	ClassName(class Value) string

	// IsKindOf reports whether v is an instance of class or of one of its
	// subclasses.
	IsKindOf(v Value, class Value) bool

	// DefineMethod registers fn as an instance method on class.
	DefineMethod(class Value, name string, fn Callback)

	// DefineSingletonMethod registers fn as a method on recv's singleton
	// (a class method when recv denotes a class).
	DefineSingletonMethod(recv Value, name string, fn Callback)

	// Funcall invokes a method on recv. This is the safe-call entry point:
	// an exception raised during the call is returned as an error, never
	// left pending.
	Funcall(recv Value, name string, args ...Value) (Value, error)

	// TypedDataWrap allocates an instance of class owning the native
	// memory at data, described by dt. The collector invokes dt's free
	// hook when the instance is reclaimed.
	TypedDataWrap(class Value, data unsafe.Pointer, dt *DataType) Value

	// TypedDataGet returns the native memory embedded in obj. The
	// descriptor must be the same one the object was wrapped with;
	// descriptors are compared by address.
	TypedDataGet(obj Value, dt *DataType) (unsafe.Pointer, error)

	// Raise raises a VM exception of the given class and does not return.
	// A zero class raises the VM's default error class. The panic it
	// unwinds with satisfies Raised and must only be recovered by the
	// VM's own dispatch boundary.
	Raise(class Value, format string, args ...any)
}

// Raised marks a panic payload as a VM exception in flight. Native code
// that recovers a Raised payload must re-panic it unchanged; the VM's
// dispatch boundary is the only legitimate recovery site.
type Raised interface {
	error

	// ExceptionClass returns the VM class of the exception.
	ExceptionClass() Value
}
