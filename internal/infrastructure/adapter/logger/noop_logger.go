package logger

import (
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything
// Useful for testing or when logging is disabled
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return NoopLogger{}
}

// Log discards the message
func (NoopLogger) Log(core.Severity, string, ...any) {}

// LogMsg discards the message
func (NoopLogger) LogMsg(core.Severity, string, string) {}
