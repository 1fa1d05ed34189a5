package consolehandler

import (
	"io"
	"sync"

	"gitlab.com/tozd/go/errors"

	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/formatter"
	"github.com/philipp01105/nslog/handler"
)

// SyncConsoleHandler writes each entry on the calling goroutine. Info and
// Debug go to the standard output writer, Warn and Error to the error
// writer.
type SyncConsoleHandler struct {
	out             io.Writer
	errOut          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool // true if both writers are safe for concurrent Write calls
	stats           *handler.Stats
	// mu serializes writes across both outputs so that lines from
	// concurrent callers never interleave, even when out and errOut
	// share a terminal.
	mu        sync.Mutex
	closed    chan struct{}
	closeOnce sync.Once
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{
		out:       cfg.Writer,
		errOut:    cfg.ErrWriter,
		formatter: cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter ||
			(isConcurrentSafeWriter(cfg.Writer) && isConcurrentSafeWriter(cfg.ErrWriter)),
		stats:  handler.NewStats(),
		closed: make(chan struct{}),
	}

	// Cache BufferFormatter to format into pooled buffers
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return h
}

// writerFor picks the output channel for a level
func (h *SyncConsoleHandler) writerFor(level core.Level) io.Writer {
	if level >= core.WarnLevel {
		return h.errOut
	}
	return h.out
}

// Handle processes a log entry synchronously.
func (h *SyncConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return errors.New("console handler is closed")
	default:
	}

	if err := h.write(entry, h.writerFor(entry.Level)); err != nil {
		h.stats.IncrementFailed()
		return errors.Errorf("console handler: writing %s entry: %w", entry.Level, err)
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// write formats outside the lock and writes under it
func (h *SyncConsoleHandler) write(entry *core.Entry, w io.Writer) error {
	if h.bufferFormatter != nil {
		buf := formatter.GetBuffer()
		h.bufferFormatter.FormatEntry(entry, buf)
		err := h.writeLocked(w, buf.Bytes())
		formatter.PutBuffer(buf)
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	return h.writeLocked(w, data)
}

func (h *SyncConsoleHandler) writeLocked(w io.Writer, p []byte) error {
	if h.concurrentSafe {
		_, err := w.Write(p)
		return err
	}
	h.mu.Lock()
	_, err := w.Write(p)
	h.mu.Unlock()
	return err
}

// Stats returns a snapshot of the current statistics
func (h *SyncConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// CanRecycleEntry returns true because sync handler processes entries immediately.
func (h *SyncConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the handler. The standard streams are not closed.
func (h *SyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}
