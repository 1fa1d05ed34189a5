package logger

import (
	"os"
	"path/filepath"
	"strings"
)

// Default returns the current logger. When none is registered it
// registers a process logger named after the program, see
// ProgramNamespace.
func Default() *Logger {
	if l := Current(); l != nil {
		return l
	}

	// Build outside the lock; a concurrent registration wins.
	candidate := NewBuilder().WithNamespace(ProgramNamespace()).Build()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if n := len(registry.loggers); n > 0 {
		return registry.loggers[n-1]
	}
	registry.loggers = append(registry.loggers, candidate)
	return candidate
}

// SetNamespace sets the namespace of Default()
func SetNamespace(namespace string) {
	Default().SetNamespace(namespace)
}

// SetLevel sets the level of Default()
func SetLevel(level string) {
	Default().SetLevel(level)
}

// ProgramNamespace derives a namespace from the running executable: its
// base name without extension, lower-cased.
func ProgramNamespace() string {
	if len(os.Args) == 0 {
		return ""
	}
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(name)
}
