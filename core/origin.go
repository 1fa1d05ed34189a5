package core

import (
	"io"
	"strconv"
	"strings"
)

// Origin identifies the call site a log line is attributed to.
// The zero value means the origin is unknown.
type Origin struct {
	File      string
	ShortFile string
	Line      int
	// Column is 0 when unknown. The Go runtime never reports columns;
	// textual traces sometimes do.
	Column int
	// Function is the display name (package path stripped), empty for
	// anonymous functions.
	Function string
	Defined  bool
}

// String renders the origin as "file:line[:column][ - function()]".
// An unknown origin renders as the empty string.
func (o Origin) String() string {
	if !o.Defined {
		return ""
	}
	var b strings.Builder
	b.Grow(len(o.ShortFile) + len(o.Function) + 16)
	o.appendTo(&b)
	return b.String()
}

// AppendTo writes the rendered origin to b without an intermediate string.
func (o Origin) AppendTo(b io.StringWriter) {
	if o.Defined {
		o.appendTo(b)
	}
}

func (o Origin) appendTo(b io.StringWriter) {
	b.WriteString(o.ShortFile)
	b.WriteString(":")
	b.WriteString(strconv.Itoa(o.Line))
	if o.Column > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(o.Column))
	}
	if o.Function != "" {
		b.WriteString(" - ")
		b.WriteString(o.Function)
		b.WriteString("()")
	}
}

// originOf builds an Origin from a frame that survived filtering
func originOf(f Frame) Origin {
	return Origin{
		File:      f.File,
		ShortFile: f.ShortFile(),
		Line:      f.Line,
		Column:    f.Column,
		Function:  f.DisplayName(),
		Defined:   true,
	}
}
