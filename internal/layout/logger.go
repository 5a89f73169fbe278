package layout

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called while other goroutines are solving.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by the solver.
// By default the solver produces no log output. Pass nil to restore that.
//
// Levels used:
//   - Debug: grid dimensions and per-track expansion/shrink decisions
//   - Warn: an axis could not be shrunk enough to fit its target
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger used by the solver.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
