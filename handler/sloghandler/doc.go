// Package sloghandler lets code written against log/slog log through a
// nslog Logger:
//
//	slog.SetDefault(slog.New(sloghandler.New(logger.Create("api"))))
//	slog.Info("ready", "port", 8080)
//	// [api - main.go:14 - main()] (Info) ready port=8080
//
// The origin of each line comes from slog.Record.PC, so it points at the
// slog call in application code. Attributes are rendered as key=value
// pairs after the message; groups become dotted key prefixes.
package sloghandler
