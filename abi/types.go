package abi

import "unsafe"

// Value is an opaque tagged machine word referring to a VM object. The
// referent is owned by the VM; a Value is valid only while the VM keeps it
// alive. Value 0 always denotes the VM's nil.
type Value uint64

// Argc is the argument count the VM passes to a callback. The width is
// fixed by the VM headers.
type Argc int32

// Callback is the signature the VM requires for a native method
// implementation: argument count, pointer to a vector of opaque values, and
// the receiver. The returned Value is handed back to the VM.
//
// The argv vector is borrowed from the VM and must not outlive the call.
type Callback func(argc Argc, argv *Value, self Value) Value

// MarkFunc is invoked by the collector to mark VM values reachable only
// through a wrapped native struct.
type MarkFunc func(data unsafe.Pointer)

// FreeFunc is invoked by the collector when the VM object owning a wrapped
// native struct is reclaimed.
type FreeFunc func(data unsafe.Pointer)

// SizeFunc reports the memory consumed by a wrapped native struct.
type SizeFunc func(data unsafe.Pointer) uintptr

// DataTypeFunctions is the callback block of a DataType descriptor. Layout
// mirrors the VM headers: mark, free, size, and two reserved slots.
type DataTypeFunctions struct {
	Mark     MarkFunc
	Free     FreeFunc
	Size     SizeFunc
	Reserved [2]unsafe.Pointer
}

// DataType describes a wrapped native struct to the VM. The descriptor must
// live at a stable address for the VM's entire life and its name must be
// unique per native type; the VM compares descriptors by address when
// unwrapping.
type DataType struct {
	// WrapStructName identifies the native type. Unique per descriptor,
	// process lifetime.
	WrapStructName string

	// Parent is non-nil only when the wrapped type subtypes another
	// wrapped type.
	Parent *DataType

	// Data is unused by this toolkit and left nil.
	Data unsafe.Pointer

	// Flags is passed through to the VM unchanged. Zero for our uses.
	Flags Value

	Function DataTypeFunctions
}
