package handler

import (
	"github.com/philipp01105/nslog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they processed
type StatsProvider interface {
	Stats() Snapshot
}

// CanRecycle reports whether the caller may return entry to the pool once
// h.Handle has returned. Handlers opt in with a CanRecycleEntry method.
func CanRecycle(h Handler) bool {
	rc, ok := h.(interface{ CanRecycleEntry() bool })
	return ok && rc.CanRecycleEntry()
}
