package core

import (
	"sync"
	"time"
)

// Entry represents a log entry with all its metadata
type Entry struct {
	Time      time.Time
	Level     Level
	Namespace string
	Origin    Origin
	Message   string
	// ErrorOrigin is where the logged error was created. Only set for
	// failure payloads whose error carries a stack trace.
	ErrorOrigin Origin
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}
