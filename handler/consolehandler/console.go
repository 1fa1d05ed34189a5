package consolehandler

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/nslog/formatter"
	"github.com/philipp01105/nslog/handler"
)

// ColorMode controls ANSI colouring of the level tag
type ColorMode int

const (
	// ColorAuto colours when every output is a terminal and NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways colours unconditionally
	ColorAlways
	// ColorNever never colours
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer receives Info and Debug lines (default: stdout)
	Writer io.Writer
	// ErrWriter receives Warn and Error lines (default: stderr)
	ErrWriter io.Writer
	// Formatter to use (default: TextFormatter, coloured per Color)
	Formatter formatter.Formatter
	// Color selects tag colouring for the default formatter
	Color ColorMode
	// TimestampFormat is passed to the default formatter; empty prints no time
	TimestampFormat string
	// ConcurrentWriter indicates both writers support concurrent Write calls.
	// When true, the handler skips write-level locking. Automatically
	// detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// isTerminal reports whether w is a file descriptor attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled resolves a ColorMode against the actual outputs
func colorEnabled(mode ColorMode, outputs ...io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	for _, w := range outputs {
		if !isTerminal(w) {
			return false
		}
	}
	return true
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	// Terminal detection must look at the raw streams: the colorable
	// wrappers hide the file descriptor on Windows.
	detectOut, detectErr := cfg.Writer, cfg.ErrWriter
	if cfg.Writer == nil {
		detectOut = os.Stdout
		cfg.Writer = colorable.NewColorableStdout()
	}
	if cfg.ErrWriter == nil {
		detectErr = os.Stderr
		cfg.ErrWriter = colorable.NewColorableStderr()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{
			Color:           colorEnabled(cfg.Color, detectOut, detectErr),
			TimestampFormat: cfg.TimestampFormat,
		})
	}
}

// NewConsoleHandler creates a new console handler. The returned handler
// implements Handler and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	return newSyncConsoleHandler(cfg)
}
