// Package log provides the shared logger used by optimize, vectorize,
// and emit.
package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package-wide logger. It is a no-op logger unless
// SetLogger has been called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the package-wide logger. Call before any
// compilation work starts; it has no effect once Logger has already been
// read.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {
		logger = l
	})
}
