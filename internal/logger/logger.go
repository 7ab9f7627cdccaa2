package logger

import "sync"

// Textual levels accepted from configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	instance *Logger
	initOnce sync.Once
)

// Get returns the process-wide logger. The level argument only matters on
// the first call; later calls get the already built instance regardless.
func Get(level string) *Logger {
	initOnce.Do(func() {
		instance = newZapLogger(level)
	})
	return instance
}
