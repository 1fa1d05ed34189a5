// Command nslogdemo prints a few lines through each logging path so the
// origin attribution can be checked by eye.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"

	"github.com/philipp01105/nslog/handler/consolehandler"
	"github.com/philipp01105/nslog/handler/sloghandler"
	"github.com/philipp01105/nslog/logger"
)

func main() {
	var (
		namespace = flag.String("namespace", logger.ProgramNamespace(), "namespace printed before the origin")
		level     = flag.String("level", "info", `"debug" enables debug lines`)
		color     = flag.String("color", "auto", "tag colouring: auto, always or never")
		timestamp = flag.String("timestamp", "", "Go time layout prefixed to each line, e.g. 15:04:05")
	)
	flag.Parse()

	mode, err := parseColorMode(*color)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewBuilder().
		WithHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Color:           mode,
			TimestampFormat: *timestamp,
		})).
		WithNamespace(*namespace).
		WithLevel(*level).
		Register()
	defer log.Close()

	log.Info("starting with level", *level)
	log.Debug("debug output is enabled")
	log.Emit(logger.ParseLevel(*level), logger.Message("emitted at", strings.ToUpper(*level)))
	log.DebugOr("resolved configuration:", flag.NArg(), "extra arguments", "configuration loaded")

	if err := loadReport("q3.csv"); err != nil {
		log.Failure(err)
	}

	func() {
		logger.Warn("logged from a closure through the package functions")
	}()

	slog.New(sloghandler.New(log)).Info("logged through slog", "elapsed", 1200*time.Millisecond)

	defer func() {
		if r := recover(); r != nil {
			origin := log.OriginFromTrace(string(debug.Stack()))
			log.EmitAt(logger.ErrorLevel, origin, logger.Message("recovered:", r))
		}
	}()
	divide(1, 0)
}

func loadReport(name string) error {
	return errors.Errorf("report %s not found", name)
}

func divide(a, b int) int {
	return a / b
}

func parseColorMode(s string) (consolehandler.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return consolehandler.ColorAuto, nil
	case "always":
		return consolehandler.ColorAlways, nil
	case "never":
		return consolehandler.ColorNever, nil
	}
	return consolehandler.ColorAuto, errors.Errorf("unknown color mode %q", s)
}
