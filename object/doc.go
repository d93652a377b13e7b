// Package object provides typed wrappers around VM values.
//
// Every wrapper carries exactly one opaque abi.Value and satisfies the
// Object interface — the single capability ("yield my underlying VM value")
// that all generic code in the toolkit is written against. Wrappers are
// cheap views: copying one never copies the referent, which stays owned by
// the VM collector.
//
// A wrapper for a user-defined VM class is a struct embedding Base plus a
// RubyClassName method:
//
//	type Greeter struct{ object.Base }
//
//	func (Greeter) RubyClassName() string { return "Greeter" }
//
// Downcasts from a generic value are centralised here: TryConvert checks
// the value's class against the target wrapper's class before minting it,
// To transmutes without checking and is defined behaviour only when the
// caller has proved the class externally.
package object
