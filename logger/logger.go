package logger

import (
	"strings"
	"sync/atomic"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
	"github.com/philipp01105/nslog/handler/consolehandler"
)

// Logger attributes every line to the application code that emitted it
// and prefixes it with the logger's namespace. Namespace and debug flag
// may be changed at any time from any goroutine.
type Logger struct {
	handler      handler.Handler
	resolver     *core.Resolver
	namespace    atomic.Pointer[string]
	debug        atomic.Bool
	recycleEntry bool
	coarseClock  bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler     handler.Handler
	namespace   string
	level       string
	internal    []string
	coarseClock bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler (default: a console handler on the
// standard streams)
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithNamespace sets the label printed before the origin
func (b *Builder) WithNamespace(namespace string) *Builder {
	b.namespace = namespace
	return b
}

// WithLevel sets the initial level, see Logger.SetLevel
func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

// WithInternalPackages marks import path prefixes whose frames are
// skipped during origin resolution, e.g. an application's own logging
// helpers.
func (b *Builder) WithInternalPackages(prefixes ...string) *Builder {
	b.internal = append(b.internal, prefixes...)
	return b
}

// WithCoarseClock stamps entries with a cached clock updated every
// 500µs instead of calling time.Now per line
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance without registering it
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}
	if b.coarseClock {
		core.StartCoarseClock()
	}
	l := &Logger{
		handler:      h,
		resolver:     core.NewResolver(b.internal...),
		recycleEntry: handler.CanRecycle(h),
		coarseClock:  b.coarseClock,
	}
	l.SetNamespace(b.namespace)
	l.SetLevel(b.level)
	return l
}

// Register builds the Logger and appends it to the registry, making it
// the target of the package-level functions.
func (b *Builder) Register() *Logger {
	l := b.Build()
	register(l)
	return l
}

// Namespace returns the current namespace, "" when none is set
func (l *Logger) Namespace() string {
	if ns := l.namespace.Load(); ns != nil {
		return *ns
	}
	return ""
}

// SetNamespace replaces the namespace. Surrounding whitespace is dropped;
// an empty namespace removes the namespace segment from lines.
func (l *Logger) SetNamespace(namespace string) {
	ns := strings.TrimSpace(namespace)
	l.namespace.Store(&ns)
}

// SetLevel enables debug output iff level is "debug", ignoring case and
// surrounding whitespace. Any other value disables it.
func (l *Logger) SetLevel(level string) {
	l.debug.Store(strings.EqualFold(strings.TrimSpace(level), "debug"))
}

// DebugEnabled reports whether Debug lines are written
func (l *Logger) DebugEnabled() bool {
	return l.debug.Load()
}

// Handler returns the handler lines are written to
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Log logs operands at Info level
func (l *Logger) Log(args ...any) {
	if len(args) == 0 {
		return
	}
	l.emit(core.InfoLevel, l.resolver.Capture(1), Payload{args: args})
}

// Info logs operands at Info level
func (l *Logger) Info(args ...any) {
	if len(args) == 0 {
		return
	}
	l.emit(core.InfoLevel, l.resolver.Capture(1), Payload{args: args})
}

// Warn logs operands at Warn level
func (l *Logger) Warn(args ...any) {
	if len(args) == 0 {
		return
	}
	l.emit(core.WarnLevel, l.resolver.Capture(1), Payload{args: args})
}

// Error logs operands at Error level. Errors among the operands are
// printed like any other value; use Failure to attribute a line to where
// an error was created.
func (l *Logger) Error(args ...any) {
	if len(args) == 0 {
		return
	}
	l.emit(core.ErrorLevel, l.resolver.Capture(1), Payload{args: args})
}

// Failure logs err at Error level, followed by the place err was created
// when it carries a stack trace. A nil err is ignored.
func (l *Logger) Failure(err error) {
	if err == nil {
		return
	}
	l.emit(core.ErrorLevel, l.resolver.Capture(1), Payload{err: err})
}

// Debug logs operands at Debug level when debug output is enabled
func (l *Logger) Debug(args ...any) {
	if len(args) == 0 || !l.debug.Load() {
		return
	}
	l.emit(core.DebugLevel, l.resolver.Capture(1), Payload{args: args})
}

// DebugOr picks its output by the debug flag. With debug enabled it logs
// all operands but the last at Debug level; a lone operand is logged as
// is. With debug disabled only the last operand is logged, at Info level.
//
//	log.DebugOr("cache miss for", key, "loading")
func (l *Logger) DebugOr(args ...any) {
	n := len(args)
	if n == 0 {
		return
	}
	if l.debug.Load() {
		if n > 1 {
			args = args[:n-1]
		}
		l.emit(core.DebugLevel, l.resolver.Capture(1), Payload{args: args})
		return
	}
	l.emit(core.InfoLevel, l.resolver.Capture(1), Payload{args: args[n-1:]})
}

// Emit logs a payload at the given level. Debug payloads are dropped
// while debug output is disabled.
func (l *Logger) Emit(level Level, p Payload) {
	if !l.accepts(level, p) {
		return
	}
	l.emit(level, l.resolver.Capture(1), p)
}

// EmitAt is Emit with a call site supplied by the caller, e.g. one
// captured earlier or resolved from a recovered panic trace.
func (l *Logger) EmitAt(level Level, origin core.Origin, p Payload) {
	if !l.accepts(level, p) {
		return
	}
	l.emit(level, origin, p)
}

// Origin resolves the call site of its caller the same way the logging
// methods do
func (l *Logger) Origin() core.Origin {
	return l.resolver.Capture(1)
}

// OriginAt resolves a program counter such as slog.Record.PC. A zero or
// internal pc falls back to the caller's stack.
func (l *Logger) OriginAt(pc uintptr) core.Origin {
	if pc == 0 {
		return l.resolver.Capture(1)
	}
	return l.resolver.FromPC(pc)
}

// OriginOf resolves the creation site of err, or the zero Origin when
// err carries no stack trace
func (l *Logger) OriginOf(err error) core.Origin {
	return l.resolver.FromError(err)
}

// OriginFromTrace resolves a textual Go traceback such as the output of
// runtime/debug.Stack
func (l *Logger) OriginFromTrace(trace string) core.Origin {
	return l.resolver.FromTrace(trace)
}

func (l *Logger) accepts(level Level, p Payload) bool {
	if p.Empty() {
		return false
	}
	return level != core.DebugLevel || l.debug.Load()
}

// emit builds the entry and hands it to the handler. Handler errors are
// counted by the handler and otherwise dropped: logging never fails the
// caller.
func (l *Logger) emit(level core.Level, origin core.Origin, p Payload) {
	entry := core.GetEntry()
	if l.coarseClock {
		entry.Time = core.CoarseNow()
	}
	entry.Level = level
	entry.Namespace = l.Namespace()
	entry.Origin = origin
	entry.Message = p.String()
	if p.err != nil {
		entry.ErrorOrigin = l.resolver.FromError(p.err)
	}

	_ = l.handler.Handle(entry)

	// Return entry to pool if handler supports it
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
