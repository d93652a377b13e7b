package vmtest

import (
	"sort"
	"unsafe"

	"github.com/gorb-lang/gorb/abi"
)

type kind uint8

const (
	kindNil kind = iota
	kindBool
	kindInt
	kindFloat
	kindString
	kindSymbol
	kindArray
	kindHash
	kindObject
	kindClass
	kindModule
	kindData
)

type pair struct {
	key abi.Value
	val abi.Value
}

// heapObject is one slot in the handle table. Which payload fields are
// live depends on kind.
type heapObject struct {
	kind  kind
	class abi.Value

	b     bool
	i     int64
	f     float64
	str   string
	elems []abi.Value
	pairs []pair

	// classes and modules
	name    string
	super   abi.Value
	methods map[string]abi.Callback

	// singleton methods, possible on any object
	smeths map[string]abi.Callback

	// typed data
	data  unsafe.Pointer
	dtype *abi.DataType

	marked bool
}

// VM is the reference implementation of abi.VM. Create one with New and
// install it with abi.Bind. Not safe for concurrent use; the real runtime
// serialises native callbacks and so does every test here.
type VM struct {
	objects map[abi.Value]*heapObject
	next    abi.Value
	consts  map[string]abi.Value
	symbols map[string]abi.Value

	nilV   abi.Value
	trueV  abi.Value
	falseV abi.Value

	objectClass abi.Value
	moduleClass abi.Value
	classClass  abi.Value

	runtimeError abi.Value

	gcActive bool
}

// New bootstraps a VM with the base class hierarchy.
func New() *VM {
	vm := &VM{
		objects: make(map[abi.Value]*heapObject),
		consts:  make(map[string]abi.Value),
		symbols: make(map[string]abi.Value),
	}

	// The metaclass knot: Object, Module and Class reference each other,
	// so allocate the slots first and tie them up after.
	vm.objectClass = vm.rawClass("Object", 0)
	vm.moduleClass = vm.rawClass("Module", vm.objectClass)
	vm.classClass = vm.rawClass("Class", vm.moduleClass)
	for _, c := range []abi.Value{vm.objectClass, vm.moduleClass, vm.classClass} {
		vm.objects[c].class = vm.classClass
	}

	for _, name := range []string{
		"String", "Fixnum", "Float", "Boolean", "NilClass",
		"Symbol", "Array", "Hash",
	} {
		vm.bootClass(name, vm.objectClass)
	}

	standardError := vm.bootClass("StandardError", vm.objectClass)
	vm.runtimeError = vm.bootClass("RuntimeError", standardError)
	vm.bootClass("TypeError", standardError)
	vm.bootClass("ArgumentError", standardError)
	vm.bootClass("NoMethodError", standardError)

	// nil is value 0 by ABI contract; give it a heap slot so ClassOf works.
	vm.nilV = 0
	vm.objects[0] = &heapObject{kind: kindNil, class: vm.consts["NilClass"]}

	vm.trueV = vm.alloc(&heapObject{kind: kindBool, class: vm.consts["Boolean"], b: true})
	vm.falseV = vm.alloc(&heapObject{kind: kindBool, class: vm.consts["Boolean"], b: false})

	return vm
}

// rawClass allocates a class slot without registering a constant.
func (vm *VM) rawClass(name string, super abi.Value) abi.Value {
	v := vm.alloc(&heapObject{
		kind:    kindClass,
		class:   vm.classClass,
		name:    name,
		super:   super,
		methods: make(map[string]abi.Callback),
	})
	vm.consts[name] = v
	return v
}

func (vm *VM) bootClass(name string, super abi.Value) abi.Value {
	return vm.rawClass(name, super)
}

func (vm *VM) alloc(obj *heapObject) abi.Value {
	vm.next++
	vm.objects[vm.next] = obj
	return vm.next
}

// get returns the heap slot for v. A dangling handle is a hard programmer
// error: the native side held a Value across a collection without rooting
// it.
func (vm *VM) get(v abi.Value) *heapObject {
	obj := vm.objects[v]
	if obj == nil {
		panic("vmtest: dangling value handle")
	}
	return obj
}

// --- allocation and primitive access -----------------------------------

// NilValue implements abi.VM.
func (vm *VM) NilValue() abi.Value { return vm.nilV }

// BoolNew implements abi.VM.
func (vm *VM) BoolNew(b bool) abi.Value {
	if b {
		return vm.trueV
	}
	return vm.falseV
}

// BoolToB implements abi.VM.
func (vm *VM) BoolToB(v abi.Value) bool {
	obj := vm.get(v)
	if obj.kind != kindBool {
		panic("vmtest: BoolToB on non-boolean")
	}
	return obj.b
}

// IntFromI64 implements abi.VM.
func (vm *VM) IntFromI64(n int64) abi.Value {
	return vm.alloc(&heapObject{kind: kindInt, class: vm.consts["Fixnum"], i: n})
}

// IntToI64 implements abi.VM.
func (vm *VM) IntToI64(v abi.Value) int64 {
	obj := vm.get(v)
	if obj.kind != kindInt {
		panic("vmtest: IntToI64 on non-integer")
	}
	return obj.i
}

// FloatNew implements abi.VM.
func (vm *VM) FloatNew(f float64) abi.Value {
	return vm.alloc(&heapObject{kind: kindFloat, class: vm.consts["Float"], f: f})
}

// FloatToF64 implements abi.VM.
func (vm *VM) FloatToF64(v abi.Value) float64 {
	obj := vm.get(v)
	if obj.kind != kindFloat {
		panic("vmtest: FloatToF64 on non-float")
	}
	return obj.f
}

// StringNewUTF8 implements abi.VM.
func (vm *VM) StringNewUTF8(s string) abi.Value {
	return vm.alloc(&heapObject{kind: kindString, class: vm.consts["String"], str: s})
}

// StringToUTF8 implements abi.VM.
func (vm *VM) StringToUTF8(v abi.Value) string {
	obj := vm.get(v)
	if obj.kind != kindString {
		panic("vmtest: StringToUTF8 on non-string")
	}
	return obj.str
}

// StringConcat implements abi.VM.
func (vm *VM) StringConcat(a, b abi.Value) abi.Value {
	dst := vm.get(a)
	src := vm.get(b)
	if dst.kind != kindString || src.kind != kindString {
		panic("vmtest: StringConcat on non-string")
	}
	dst.str += src.str
	return a
}

// SymbolNew implements abi.VM. Symbols are interned and never collected.
func (vm *VM) SymbolNew(name string) abi.Value {
	if v, ok := vm.symbols[name]; ok {
		return v
	}
	v := vm.alloc(&heapObject{kind: kindSymbol, class: vm.consts["Symbol"], str: name})
	vm.symbols[name] = v
	return v
}

// SymbolName implements abi.VM.
func (vm *VM) SymbolName(v abi.Value) string {
	obj := vm.get(v)
	if obj.kind != kindSymbol {
		panic("vmtest: SymbolName on non-symbol")
	}
	return obj.str
}

// ArrayNew implements abi.VM.
func (vm *VM) ArrayNew() abi.Value {
	return vm.alloc(&heapObject{kind: kindArray, class: vm.consts["Array"]})
}

// ArrayEntry implements abi.VM. Negative indices count from the end;
// out-of-bounds yields nil.
func (vm *VM) ArrayEntry(ary abi.Value, index int64) abi.Value {
	obj := vm.get(ary)
	if obj.kind != kindArray {
		panic("vmtest: ArrayEntry on non-array")
	}
	if index < 0 {
		index += int64(len(obj.elems))
	}
	if index < 0 || index >= int64(len(obj.elems)) {
		return vm.nilV
	}
	return obj.elems[index]
}

// ArrayPush implements abi.VM.
func (vm *VM) ArrayPush(ary, item abi.Value) abi.Value {
	obj := vm.get(ary)
	if obj.kind != kindArray {
		panic("vmtest: ArrayPush on non-array")
	}
	obj.elems = append(obj.elems, item)
	return ary
}

// ArrayLen implements abi.VM.
func (vm *VM) ArrayLen(ary abi.Value) int64 {
	obj := vm.get(ary)
	if obj.kind != kindArray {
		panic("vmtest: ArrayLen on non-array")
	}
	return int64(len(obj.elems))
}

// HashNew implements abi.VM.
func (vm *VM) HashNew() abi.Value {
	return vm.alloc(&heapObject{kind: kindHash, class: vm.consts["Hash"]})
}

// keyEqual compares hash keys: identity first, then structural equality
// for the value kinds that hash by content.
func (vm *VM) keyEqual(a, b abi.Value) bool {
	if a == b {
		return true
	}
	oa, ob := vm.get(a), vm.get(b)
	if oa.kind != ob.kind {
		return false
	}
	switch oa.kind {
	case kindInt:
		return oa.i == ob.i
	case kindFloat:
		return oa.f == ob.f
	case kindString:
		return oa.str == ob.str
	default:
		// Symbols are interned, booleans and nil are singletons; all of
		// those hit the identity path above.
		return false
	}
}

// HashAref implements abi.VM.
func (vm *VM) HashAref(hash, key abi.Value) abi.Value {
	obj := vm.get(hash)
	if obj.kind != kindHash {
		panic("vmtest: HashAref on non-hash")
	}
	for _, p := range obj.pairs {
		if vm.keyEqual(p.key, key) {
			return p.val
		}
	}
	return vm.nilV
}

// HashAset implements abi.VM.
func (vm *VM) HashAset(hash, key, value abi.Value) abi.Value {
	obj := vm.get(hash)
	if obj.kind != kindHash {
		panic("vmtest: HashAset on non-hash")
	}
	for i, p := range obj.pairs {
		if vm.keyEqual(p.key, key) {
			obj.pairs[i].val = value
			return value
		}
	}
	obj.pairs = append(obj.pairs, pair{key: key, val: value})
	return value
}

// HashForeach implements abi.VM.
func (vm *VM) HashForeach(hash abi.Value, fn func(key, value abi.Value) bool) {
	obj := vm.get(hash)
	if obj.kind != kindHash {
		panic("vmtest: HashForeach on non-hash")
	}
	for _, p := range obj.pairs {
		if !fn(p.key, p.val) {
			return
		}
	}
}

// --- classes ------------------------------------------------------------

// DefineClass implements abi.VM. Defining a name that is already bound to a
// class reopens it.
func (vm *VM) DefineClass(name string, parent abi.Value) abi.Value {
	if v, ok := vm.consts[name]; ok {
		if vm.get(v).kind == kindClass {
			return v
		}
		vm.Raise(vm.runtimeError, "%s is not a class", name)
	}
	if parent == 0 {
		parent = vm.objectClass
	}
	return vm.rawClass(name, parent)
}

// DefineClassUnder implements abi.VM. The nested class is registered under
// the path "Outer::Name".
func (vm *VM) DefineClassUnder(outer abi.Value, name string, parent abi.Value) abi.Value {
	outerObj := vm.get(outer)
	if outerObj.kind != kindClass && outerObj.kind != kindModule {
		vm.Raise(vm.runtimeError, "namespace is not a class or module")
	}
	path := outerObj.name + "::" + name
	if v, ok := vm.consts[path]; ok {
		return v
	}
	if parent == 0 {
		parent = vm.objectClass
	}
	v := vm.alloc(&heapObject{
		kind:    kindClass,
		class:   vm.classClass,
		name:    path,
		super:   parent,
		methods: make(map[string]abi.Callback),
	})
	vm.consts[path] = v
	return v
}

// DefineModule implements abi.VM.
func (vm *VM) DefineModule(name string) abi.Value {
	if v, ok := vm.consts[name]; ok {
		if vm.get(v).kind == kindModule {
			return v
		}
		vm.Raise(vm.runtimeError, "%s is not a module", name)
	}
	v := vm.alloc(&heapObject{
		kind:    kindModule,
		class:   vm.moduleClass,
		name:    name,
		methods: make(map[string]abi.Callback),
	})
	vm.consts[name] = v
	return v
}

// ConstGet implements abi.VM.
func (vm *VM) ConstGet(name string) (abi.Value, bool) {
	v, ok := vm.consts[name]
	return v, ok
}

// ClassOf implements abi.VM.
func (vm *VM) ClassOf(v abi.Value) abi.Value {
	return vm.get(v).class
}

// ClassName implements abi.VM.
func (vm *VM) ClassName(class abi.Value) string {
	return vm.get(class).name
}

// IsKindOf implements abi.VM.
func (vm *VM) IsKindOf(v abi.Value, class abi.Value) bool {
	for c := vm.get(v).class; c != 0; c = vm.get(c).super {
		if c == class {
			return true
		}
	}
	return false
}

// DefineMethod implements abi.VM.
func (vm *VM) DefineMethod(class abi.Value, name string, fn abi.Callback) {
	obj := vm.get(class)
	if obj.methods == nil {
		vm.Raise(vm.runtimeError, "receiver cannot hold instance methods")
	}
	obj.methods[name] = fn
}

// DefineSingletonMethod implements abi.VM.
func (vm *VM) DefineSingletonMethod(recv abi.Value, name string, fn abi.Callback) {
	obj := vm.get(recv)
	if obj.smeths == nil {
		obj.smeths = make(map[string]abi.Callback)
	}
	obj.smeths[name] = fn
}

// --- introspection (for tooling, not part of abi.VM) --------------------

// ClassNames returns the sorted names of every registered class.
func (vm *VM) ClassNames() []string {
	var names []string
	for name, v := range vm.consts {
		if vm.get(v).kind == kindClass {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MethodNames returns the sorted instance method names of a class.
func (vm *VM) MethodNames(class abi.Value) []string {
	obj := vm.get(class)
	var names []string
	for name := range obj.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SingletonMethodNames returns the sorted singleton method names of an
// object.
func (vm *VM) SingletonMethodNames(recv abi.Value) []string {
	obj := vm.get(recv)
	var names []string
	for name := range obj.smeths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Live reports whether v still has a heap slot. Test helper.
func (vm *VM) Live(v abi.Value) bool {
	_, ok := vm.objects[v]
	return ok
}
