package diagnostics

import (
	"context"

	"github.com/janiskrasemann/whisker/internal/logging"
)

// Counter counts reported warnings.
type Counter interface {
	IncWarnings()
}

// CrashMonitor is the out-of-band sink for failures. It never surfaces
// anything to the user; warnings go to the log and to metrics.
type CrashMonitor struct {
	logger  logging.Logger
	counter Counter
}

// NewCrashMonitor returns a monitor logging through logger. counter may be nil.
func NewCrashMonitor(logger logging.Logger, counter Counter) *CrashMonitor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CrashMonitor{logger: logger, counter: counter}
}

func (m *CrashMonitor) TrackWarning(ctx context.Context, message string) {
	m.logger.Warn(message, logging.String("run_id", logging.RunID(ctx)))
	if m.counter != nil {
		m.counter.IncWarnings()
	}
}
