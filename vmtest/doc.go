// Package vmtest is an in-process reference implementation of the abi.VM
// surface.
//
// It exists so the toolkit can be exercised end to end without linking a
// real runtime: a handle-table heap of tagged objects, a small bootstrap
// class hierarchy (Object, Module, Class, the built-in value classes, and
// the standard error classes), method and singleton-method dispatch with
// the usual new/initialize protocol, interned symbols, ordered hashes, and
// a mark-and-sweep collector that honours typed-data mark and free hooks.
//
// Exceptions follow the ABI contract: Raise panics with a payload
// satisfying abi.Raised, and Funcall — the safe-call entry point — is the
// only place that recovers it, returning the exception as an error.
//
// The collector never runs behind the caller's back. Tests trigger it
// explicitly:
//
//	vm.GC(keep...)
//
// where keep lists the values the native side still holds. Everything
// reachable from constants, interned symbols, or the keep list survives;
// the rest is swept and typed-data free hooks run exactly once.
//
// vmtest is a test fixture, not a product VM: no parser, no bytecode, no
// threads.
package vmtest
