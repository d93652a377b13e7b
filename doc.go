// Package gorb is a toolkit for writing native extensions against an
// embedded, garbage-collected, dynamically-typed VM that exposes a C-style
// ABI: values are opaque tagged machine words, the VM owns every heap
// object, and method implementations are registered as (argc, argv, self)
// callbacks.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	gorb/            Root package (documentation only)
//	├── abi/         Sole declaration site for the VM's ABI surface
//	├── object/      Typed wrappers around VM values and the class DSL
//	├── thunk/       Safe and unsafe callback generators
//	├── typeddata/   Embedding native structs inside VM objects
//	├── errors/      Structured error types for conversion and argument parsing
//	└── vmtest/      In-process reference VM used by the tests and tooling
//
// # Quick Start
//
// Bind a VM, define a class, register a method:
//
//	abi.Bind(vm)
//
//	type Greeter struct{ object.Base }
//
//	func (Greeter) RubyClassName() string { return "Greeter" }
//
//	greeting := thunk.Safe0[Greeter]("anonymous_greeting",
//	    func(self Greeter) object.Object {
//	        return object.NewString("Hello stranger!")
//	    })
//
//	object.NewClass("Greeter", nil).Define(func(c *object.Definer) {
//	    c.Def("anonymous_greeting", greeting)
//	})
//
// # Value Lifetime
//
// A Value is valid only while the VM owns its referent. Every VM call is a
// potential collection point: do not stash a Value in native heap memory the
// VM cannot see and then allocate. Values held on the native stack during a
// callback are traced by the VM for the duration of the call.
//
// # Thread Safety
//
// The VM is single-threaded with respect to native extensions: at most one
// callback runs at a time, and the VM must not be entered from a thread it
// does not know about. Typed-data registries are immutable after
// construction and safe to share.
package gorb
