// Package handler provides the Handler interface that receives resolved
// log entries, along with the counters handlers keep about them.
//
// Handlers are synchronous: Handle returns once the entry has been
// written. A handler that does not retain the entry after Handle returns
// reports so through CanRecycleEntry, and the logger then hands the entry
// back to the pool.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes the bracketed line to stdout (Info, Debug)
//     and stderr (Warn, Error), colouring the level tag on terminals.
//   - multihandler fans out a single entry to multiple child handlers.
//   - zaphandler forwards entries, origin included, into a zapcore.Core.
//   - sloghandler is the other direction: a log/slog.Handler that feeds
//     records into a logger.
//
// Processed and failed counts are tracked via the Stats type and exposed
// through StatsProvider.
package handler
