package logger

import (
	"sync"
)

// registry holds named loggers. The CLI registers one per command group
// (string, array, collection, object, crypto, random, date) and resets the
// set on every invocation.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a named logger.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get returns the logger registered under name, or the global logger tagged
// with name as its component.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers a component logger for each name, derived from
// the current global logger. Call it after Init.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}

// Reset drops every registered logger.
func Reset() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	clear(registry.loggers)
}
