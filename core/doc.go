// Package core defines the shared types used across nslog and the
// call-site resolution that gives the library its purpose.
//
// Every log line is attributed to an Origin: the file, line and, when it
// has one, the function of the application code that emitted it. A
// Resolver finds that code by walking a captured stack innermost first
// and dropping frames that belong to
//
//   - this module (except its _test.go files),
//   - dependencies in the module cache or a vendor tree,
//   - the Go runtime and standard library,
//
// then taking the first frame left. No fixed skip depth is assumed, so
// the same resolver serves Logger methods, package-level helpers, the
// slog front-end and application wrappers registered as internal.
//
// Besides the live stack, a Resolver can read the stack an error recorded
// when it was created (errors implementing StackTrace() []uintptr, such as
// those from gitlab.com/tozd/go/errors), a single program counter, or a
// textual traceback parsed by ParseTrace. Resolution never fails: anything
// it cannot make sense of yields the zero Origin, which renders as "".
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
