package benchmark

import (
	"github.com/philipp01105/nslog/core"
	"github.com/philipp01105/nslog/handler"
)

// noopHandler consumes entries without formatting them, isolating the
// cost of origin resolution
type noopHandler struct {
	lastLine int
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	h.lastLine = e.Origin.Line
	return nil
}

func (h *noopHandler) CanRecycleEntry() bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
