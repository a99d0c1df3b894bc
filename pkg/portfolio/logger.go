package portfolio

import "log"

// Logger receives operator diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultLogger returns the process-wide standard logger.
func DefaultLogger() Logger {
	return log.Default()
}

// NopLogger discards every diagnostic.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
