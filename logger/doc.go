// Package logger is the public API of nslog. Most users only need to
// import this package.
//
// Every line is attributed to the application code that emitted it. At
// log time the stack is walked innermost first and the first frame that
// belongs neither to this module, nor to a dependency in the module
// cache or a vendor tree, nor to the Go runtime and standard library
// becomes the line's origin:
//
//	[api - server.go:42 - (*Server).handle()] (Warn) slow request 1.2s
//
// Loggers are created with the Builder, or with Create which also
// registers them:
//
//	api := logger.Create("api")
//	api.Info("listening on", addr)
//	api.Warn("slow request", elapsed)
//
// The package-level functions Info, Warn, Error, Debug and friends
// forward to the most recently registered logger and do nothing while
// none exists. Get looks a registered logger up by namespace, ignoring
// case and surrounding whitespace. SetNamespace, SetLevel and Default
// create a process logger named after the executable on first use.
//
// Debug lines are written only after SetLevel("debug"). DebugOr logs a
// verbose form with debug enabled and a short one without:
//
//	log.DebugOr("retrying", url, "after", err, "retrying request")
//
// Errors logged with Failure are attributed twice: the line's origin is
// the Failure call, and the place the error was created is appended
// when the error records a stack trace, as gitlab.com/tozd/go/errors
// errors do:
//
//	[db - store.go:88 - (*Store).Save()] (Error) disk full - writer.go:17 - flush()
//
// Logging never returns errors and never panics because of a value
// being logged.
package logger
