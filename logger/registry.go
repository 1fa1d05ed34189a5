package logger

import (
	"strings"
	"sync"
)

// registry holds every registered logger in creation order
var registry struct {
	mu      sync.RWMutex
	loggers []*Logger
}

func register(l *Logger) {
	registry.mu.Lock()
	registry.loggers = append(registry.loggers, l)
	registry.mu.Unlock()
}

// Create builds a logger with the default console handler, registers it
// and returns it. It becomes the target of the package-level functions.
func Create(namespace string) *Logger {
	return NewBuilder().WithNamespace(namespace).Register()
}

// Get returns the first registered logger whose namespace matches,
// ignoring case and surrounding whitespace, or nil.
func Get(namespace string) *Logger {
	namespace = strings.TrimSpace(namespace)

	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for _, l := range registry.loggers {
		if strings.EqualFold(l.Namespace(), namespace) {
			return l
		}
	}
	return nil
}

// Current returns the most recently registered logger, or nil
func Current() *Logger {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if n := len(registry.loggers); n > 0 {
		return registry.loggers[n-1]
	}
	return nil
}

// Package-level convenience functions. They forward to Current and do
// nothing while no logger is registered.

// Log logs operands at Info level using the current logger
func Log(args ...any) {
	if l := Current(); l != nil {
		l.Log(args...)
	}
}

// Info logs operands at Info level using the current logger
func Info(args ...any) {
	if l := Current(); l != nil {
		l.Info(args...)
	}
}

// Warn logs operands at Warn level using the current logger
func Warn(args ...any) {
	if l := Current(); l != nil {
		l.Warn(args...)
	}
}

// Error logs operands at Error level using the current logger
func Error(args ...any) {
	if l := Current(); l != nil {
		l.Error(args...)
	}
}

// Failure logs err at Error level using the current logger
func Failure(err error) {
	if l := Current(); l != nil {
		l.Failure(err)
	}
}

// Debug logs operands at Debug level using the current logger
func Debug(args ...any) {
	if l := Current(); l != nil {
		l.Debug(args...)
	}
}

// DebugOr calls DebugOr on the current logger
func DebugOr(args ...any) {
	if l := Current(); l != nil {
		l.DebugOr(args...)
	}
}
