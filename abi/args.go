package abi

import "unsafe"

// ParseArguments materialises the (argc, argv) pair the VM hands a callback
// as a slice borrowed from the VM's argument vector. The slice aliases VM
// memory and must not outlive the callback invocation.
func ParseArguments(argc Argc, argv *Value) []Value {
	if argc <= 0 || argv == nil {
		return nil
	}
	return unsafe.Slice(argv, int(argc))
}
