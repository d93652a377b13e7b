package abi

import "sync/atomic"

// current holds the process-wide VM handle. The VM is ambient by design:
// callbacks are plain functions with no closure state, so they reach the
// runtime the same way a C extension does.
var current atomic.Pointer[vmBox]

type vmBox struct{ vm VM }

// Bind installs vm as the process-wide VM. Call once during bootstrap,
// before any wrapper or registry is used. Rebinding is permitted so tests
// can install a fresh VM per case.
func Bind(vm VM) {
	if vm == nil {
		panic("abi: Bind called with nil VM")
	}
	current.Store(&vmBox{vm: vm})
}

// Current returns the bound VM. It panics if Bind has not been called; a
// toolkit call before bootstrap is a programmer error with no meaningful
// recovery.
func Current() VM {
	box := current.Load()
	if box == nil {
		panic("abi: no VM bound; call abi.Bind during bootstrap")
	}
	return box.vm
}

// Bound reports whether a VM has been installed.
func Bound() bool {
	return current.Load() != nil
}
