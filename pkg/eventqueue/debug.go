package eventqueue

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

var (
	debugEnabled atomic.Bool

	noopLogger = logger.NewNoop()

	diagnosticOnce sync.Once
	diagnostic     *slog.Logger
)

// SetDebug toggles stderr tracing for every channel without an explicit logger.
// Tracing is off by default.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// Debug reports whether process-wide tracing is on.
func Debug() bool {
	return debugEnabled.Load()
}

func diagnosticLogger() *slog.Logger {
	diagnosticOnce.Do(func() {
		diagnostic = logger.New(
			logger.WithTextFormatter(),
			logger.WithLevel(slog.LevelDebug),
			logger.WithOutput(stderr{}),
		)
	})
	return diagnostic
}

// stderr writes to whatever os.Stderr is at the time of the write.
type stderr struct{}

func (stderr) Write(p []byte) (int, error) {
	return os.Stderr.Write(p)
}
