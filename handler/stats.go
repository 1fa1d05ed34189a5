package handler

import (
	"sync/atomic"

	"github.com/philipp01105/nslog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level
	ProcessedDebug uint64
	ProcessedInfo  uint64
	ProcessedWarn  uint64
	ProcessedError uint64
	// FailedTotal counts entries lost to formatter or writer errors
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	switch level {
	case core.DebugLevel:
		atomic.AddUint64(&s.ProcessedDebug, 1)
	case core.InfoLevel:
		atomic.AddUint64(&s.ProcessedInfo, 1)
	case core.WarnLevel:
		atomic.AddUint64(&s.ProcessedWarn, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.ProcessedError, 1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return atomic.LoadUint64(&s.ProcessedDebug)
	case core.InfoLevel:
		return atomic.LoadUint64(&s.ProcessedInfo)
	case core.WarnLevel:
		return atomic.LoadUint64(&s.ProcessedWarn)
	case core.ErrorLevel:
		return atomic.LoadUint64(&s.ProcessedError)
	default:
		return 0
	}
}

// GetTotalProcessed returns the total processed across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedDebug) +
		atomic.LoadUint64(&s.ProcessedInfo) +
		atomic.LoadUint64(&s.ProcessedWarn) +
		atomic.LoadUint64(&s.ProcessedError)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedDebug, 0)
	atomic.StoreUint64(&s.ProcessedInfo, 0)
	atomic.StoreUint64(&s.ProcessedWarn, 0)
	atomic.StoreUint64(&s.ProcessedError, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: map[core.Level]uint64{
			core.DebugLevel: s.GetProcessed(core.DebugLevel),
			core.InfoLevel:  s.GetProcessed(core.InfoLevel),
			core.WarnLevel:  s.GetProcessed(core.WarnLevel),
			core.ErrorLevel: s.GetProcessed(core.ErrorLevel),
		},
		FailedTotal: s.GetFailed(),
	}
	for _, n := range snap.Processed {
		snap.ProcessedTotal += n
	}
	return snap
}
