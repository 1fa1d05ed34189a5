package zaphandler

import (
	"gitlab.com/tozd/go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// ErrorOriginKey is the field carrying where a logged error was created
const ErrorOriginKey = "error_origin"

// Handler writes entries into a zapcore.Core. The namespace becomes the
// zap logger name and the resolved origin the entry's caller, so zap's
// caller encoders print the application call site.
type Handler struct {
	core  zapcore.Core
	stats *handler.Stats
}

// New creates a handler writing to c
func New(c zapcore.Core) *Handler {
	return &Handler{core: c, stats: handler.NewStats()}
}

// FromLogger creates a handler writing to the core of l. Options of l
// such as AddCaller or hooks are not applied; the core's encoder and
// level are.
func FromLogger(l *zap.Logger) *Handler {
	return New(l.Core())
}

// Handle converts the entry and writes it if the core accepts its level
func (h *Handler) Handle(entry *core.Entry) error {
	level := toZapLevel(entry.Level)
	if !h.core.Enabled(level) {
		return nil
	}

	ze := zapcore.Entry{
		Level:      level,
		Time:       entry.Time,
		LoggerName: entry.Namespace,
		Message:    entry.Message,
		Caller:     toCaller(entry.Origin),
	}

	var fields []zapcore.Field
	if entry.ErrorOrigin.Defined {
		fields = append(fields, zap.String(ErrorOriginKey, entry.ErrorOrigin.String()))
	}

	if err := h.core.Write(ze, fields); err != nil {
		h.stats.IncrementFailed()
		return errors.Errorf("zap handler: writing %s entry: %w", entry.Level, err)
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func toZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toCaller(o core.Origin) zapcore.EntryCaller {
	if !o.Defined {
		return zapcore.EntryCaller{}
	}
	file := o.File
	if file == "" {
		file = o.ShortFile
	}
	return zapcore.EntryCaller{
		Defined:  true,
		File:     file,
		Line:     o.Line,
		Function: o.Function,
	}
}

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// CanRecycleEntry returns true because nothing of the entry is retained
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close flushes the core
func (h *Handler) Close() error {
	if err := h.core.Sync(); err != nil {
		return errors.Errorf("zap handler: sync: %w", err)
	}
	return nil
}
