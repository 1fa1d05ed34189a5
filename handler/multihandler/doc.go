// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers. Errors from the children are
// combined with go.uber.org/multierr, so one failing output never hides
// another.
package multihandler
