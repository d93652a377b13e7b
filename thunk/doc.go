// Package thunk generates the ABI-level callbacks the VM invokes as method
// implementations.
//
// The VM's calling convention is (argc, argv, self) with no closure slot,
// so every method needs a distinct top-level function. The generators here
// synthesise those functions from a declarative description: the receiver's
// wrapper type, the method name, the argument names and wrapper types, and
// a Go body.
//
// Two families exist:
//
//   - Safe0..Safe3 bounds-check every argument slot and run the checked
//     conversion. Each declared argument reaches the body as an Arg[T] —
//     a fallible binding. A missing slot carries ArgumentMissing, a
//     mistyped one TypeMismatch; the body decides whether to default,
//     raise, or propagate.
//
//   - Unsafe0..Unsafe3 downcast each slot without bounds or class checks.
//     Faster and trap-prone; for methods whose VM-side callers are fully
//     controlled.
//
// Both families survive being called with arbitrary argc, and neither lets
// a panic cross the ABI boundary: panics from the body are converted into a
// VM exception raise at the thunk's outer edge, while an already-raised VM
// exception (an abi.Raised payload) passes through untouched.
package thunk
