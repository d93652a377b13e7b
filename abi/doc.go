// Package abi is the sole declaration site for the embedded VM's ABI
// surface. Every other package depends on it and only on it.
//
// The package holds pure declarations: the opaque Value word, the Argc
// width, the Callback signature the VM expects for native methods, the
// DataType descriptor record for wrapped native structs, and the VM
// interface listing the narrow set of entry points the toolkit calls.
//
// Two utilities live here because they are part of the ABI contract rather
// than of any component built on it: ParseArguments, which materialises the
// argv vector as a borrowed slice, and Bind/Current, which install the
// process-wide VM handle at bootstrap.
package abi
