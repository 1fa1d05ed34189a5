package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nslog/handler/consolehandler"
	"github.com/philipp01105/nslog/handler/sloghandler"
	"github.com/philipp01105/nslog/handler/zaphandler"
	"github.com/philipp01105/nslog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – every framework writes a text line with the call site to io.Discard
// ---------------------------------------------------------------------------

// newNslogLogger returns an nslog logger writing uncoloured lines to io.Discard.
func newNslogLogger() *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Color:     consolehandler.ColorNever,
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithNamespace("bench").
		WithLevel("debug").
		Build()
}

func newZapCore() zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
}

// newZapLogger returns a zap.Logger that records the caller.
func newZapLogger() *zap.Logger {
	return zap.New(newZapCore(), zap.AddCaller()).Named("bench")
}

// newSlogLogger returns an slog.Logger that records the source.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}

// newLogrusLogger returns a logrus.Logger that reports the caller.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(logrus.DebugLevel)
	l.SetReportCaller(true)
	return l
}

// newZerologLogger returns a zerolog.Logger that records the caller.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: io.Discard, NoColor: true}).
		With().Caller().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message with call site
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoWithCaller(b *testing.B) {
	b.Run("nslog", func(b *testing.B) {
		l := newNslogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Several operands of mixed types
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_MixedOperands(b *testing.B) {
	b.Run("nslog", func(b *testing.B) {
		l := newNslogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user", "alice", "logged in after", 3, "attempts", true)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infoln("user", "alice", "logged in after", 3, "attempts", true)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infoln("user", "alice", "logged in after", 3, "attempts", true)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("%v %v %v %v %v %v", "user", "alice", "logged in after", 3, "attempts", true)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled debug output (gate overhead)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DebugDisabled(b *testing.B) {
	b.Run("nslog", func(b *testing.B) {
		l := newNslogLogger()
		l.SetLevel("info")
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(io.Discard), zap.InfoLevel)
		l := zap.New(core, zap.AddCaller())
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger().Level(zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msg("debug message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Logging an error together with where it was created
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_ErrorWithOrigin(b *testing.B) {
	err := errors.New("disk full")

	b.Run("nslog", func(b *testing.B) {
		l := newNslogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Failure(err)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			// zap's closest equivalent: the full stack of the log call
			l.Error("failure", zap.Error(err), zap.StackSkip("stack", 0))
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – Parallel / high-concurrency logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("nslog", func(b *testing.B) {
		l := newNslogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log", 42)
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log", zap.Int("count", 42))
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log", slog.Int("count", 42))
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.WithField("count", 42).Info("parallel log")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Int("count", 42).Msg("parallel log")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – Bridges: nslog through zap's encoder, slog through nslog
// ---------------------------------------------------------------------------

func BenchmarkBridges(b *testing.B) {
	b.Run("nslog->zap", func(b *testing.B) {
		l := logger.NewBuilder().WithHandler(zaphandler.New(newZapCore())).WithNamespace("bench").Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("bridged message")
		}
	})

	b.Run("slog->nslog", func(b *testing.B) {
		l := slog.New(sloghandler.New(newNslogLogger()))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("bridged message", "count", 42)
		}
	})

	b.Run("resolve-only", func(b *testing.B) {
		l := logger.NewBuilder().WithHandler(newNoopHandler()).Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("resolved")
		}
	})
}
