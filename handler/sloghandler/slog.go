package sloghandler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/logger"
)

// Handler implements slog.Handler on top of a Logger. Records are
// attributed to the code that called the slog.Logger method; attributes
// are appended to the message as key=value pairs.
type Handler struct {
	logger *logger.Logger
	// attrs holds the rendered WithAttrs attributes, each with a leading space
	attrs string
	group string
}

// New creates a slog.Handler writing through l
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
// Debug records pass only while the logger has debug output enabled.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) != core.DebugLevel || h.logger.DebugEnabled()
}

// Handle resolves the record's origin from its program counter and emits it
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	origin := h.logger.OriginAt(record.PC)
	h.logger.EmitAt(slogLevelToCore(record.Level), origin, logger.Message(b.String()))
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &Handler{logger: h.logger, attrs: b.String(), group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{logger: h.logger, attrs: h.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", prefixing the key with the group.
// Group values are flattened into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
