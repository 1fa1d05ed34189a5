package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/nslog/core"
)

// TextFormatter renders entries as
//
//	[namespace - file.go:12 - fn()] (Info) message[ - errors.go:7]
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := GetBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	PutBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if f.TimestampFormat != "" {
		// AppendFormat avoids a string allocation
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	buf.WriteByte('[')
	buf.WriteString(entry.Namespace)
	if entry.Origin.Defined {
		if entry.Namespace != "" {
			buf.WriteString(" - ")
		}
		entry.Origin.AppendTo(buf)
	}
	buf.WriteByte(']')

	buf.WriteString(levelTag(entry.Level, f.Color))

	buf.WriteString(entry.Message)
	if entry.ErrorOrigin.Defined {
		buf.WriteString(" - ")
		entry.ErrorOrigin.AppendTo(buf)
	}

	buf.WriteByte('\n')
}
