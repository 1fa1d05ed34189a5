package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []handler.Handler
	recycleEntry bool // true when every child supports entry recycling
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		recycleEntry: true,
	}
	for _, h := range handlers {
		if !handler.CanRecycle(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle passes the entry to every child. A failing child does not stop
// the others; their errors are combined.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// CanRecycleEntry returns true if the caller can recycle the entry after Handle returns.
func (m *MultiHandler) CanRecycleEntry() bool {
	return m.recycleEntry
}

// Stats sums the snapshots of every child that provides them
func (m *MultiHandler) Stats() handler.Snapshot {
	total := handler.Snapshot{Processed: make(map[core.Level]uint64, 4)}
	for _, h := range m.handlers {
		sp, ok := h.(handler.StatsProvider)
		if !ok {
			continue
		}
		snap := sp.Stats()
		for level, n := range snap.Processed {
			total.Processed[level] += n
		}
		total.ProcessedTotal += snap.ProcessedTotal
		total.FailedTotal += snap.FailedTotal
	}
	return total
}

// Close closes all handlers, returning every error encountered
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
