package sloghandler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler/consolehandler"
	"github.com/philipp01105/nslog/logger"
)

func newTestLogger(namespace string) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &buf,
		ErrWriter: &buf,
		Color:     consolehandler.ColorNever,
	})
	return logger.NewBuilder().WithHandler(h).WithNamespace(namespace).Build(), &buf
}

func TestHandler_Origin(t *testing.T) {
	l, buf := newTestLogger("api")
	log := slog.New(New(l))

	_, _, line, _ := runtime.Caller(0)
	log.Info("ready", "port", 8080)

	want := fmt.Sprintf("[api - slog_test.go:%d - TestHandler_Origin()] (Info) ready port=8080\n", line+1)
	if buf.String() != want {
		t.Errorf("got  %q\nwant %q", buf.String(), want)
	}
}

func TestHandler_Enabled(t *testing.T) {
	l, _ := newTestLogger("api")
	h := New(l)
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("Debug should be disabled until the logger enables it")
	}
	if !h.Enabled(ctx, slog.LevelInfo) || !h.Enabled(ctx, slog.LevelError) {
		t.Error("Info and above should always be enabled")
	}

	l.SetLevel("debug")
	if !h.Enabled(ctx, slog.LevelDebug) {
		t.Error("Debug should follow the logger's debug flag")
	}
}

func TestHandler_Levels(t *testing.T) {
	l, buf := newTestLogger("")
	l.SetLevel("debug")
	log := slog.New(New(l))

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	out := buf.String()
	for _, want := range []string{"(Debug) d", "(Info) i", "(Warn) w", "(Error) e"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got: %s", want, out)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	l, buf := newTestLogger("api")
	log := slog.New(New(l)).With("service", "billing")

	log.Info("charged", "amount", 12.5)
	if !strings.HasSuffix(buf.String(), "(Info) charged service=billing amount=12.5\n") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandler_WithGroup(t *testing.T) {
	l, buf := newTestLogger("api")
	log := slog.New(New(l)).WithGroup("req").With("id", "r-1")

	log.Info("done", slog.Group("resp", slog.Int("status", 200)))
	if !strings.HasSuffix(buf.String(), "(Info) done req.id=r-1 req.resp.status=200\n") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHandler_EmptyGroupName(t *testing.T) {
	h := New(nil)
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the receiver")
	}
	if h.WithAttrs(nil) != h {
		t.Error("WithAttrs(nil) should return the receiver")
	}
}

func TestHandler_ZeroPC(t *testing.T) {
	l, buf := newTestLogger("api")
	h := New(l)

	_, _, line, _ := runtime.Caller(0)
	_ = h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelWarn, "manual", 0))

	if !strings.HasPrefix(buf.String(), fmt.Sprintf("[api - slog_test.go:%d - TestHandler_ZeroPC()] (Warn) manual", line+1)) {
		t.Errorf("got %q", buf.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelDebug - 4, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogLevelToCore(tt.slogLevel); got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
