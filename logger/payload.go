package logger

import (
	"fmt"
	"strings"
)

// Payload is what a log line carries: either a message built from
// arbitrary operands, or a failure. Construct it with Message or
// FromFailure.
type Payload struct {
	args []any
	err  error
}

// Message builds a payload from operands rendered with %v and joined by
// single spaces.
func Message(args ...any) Payload {
	return Payload{args: args}
}

// FromFailure builds a payload attributed to err. The line shows the
// error text followed by the place err was created, when err carries a
// stack trace.
func FromFailure(err error) Payload {
	return Payload{err: err}
}

// IsFailure reports whether the payload was built with FromFailure
func (p Payload) IsFailure() bool {
	return p.err != nil
}

// Err returns the failure, or nil for message payloads
func (p Payload) Err() error {
	return p.err
}

// Empty reports whether there is nothing to log
func (p Payload) Empty() bool {
	return p.err == nil && len(p.args) == 0
}

// String renders the payload text
func (p Payload) String() string {
	if p.err != nil {
		return errorText(p.err)
	}
	return renderArgs(p.args)
}

// errorText is err.Error(), guarded against Error methods that panic
func errorText(err error) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%%!v(PANIC=Error method: %v)", r)
		}
	}()
	return err.Error()
}

// renderArgs joins operands with single spaces
func renderArgs(args []any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
