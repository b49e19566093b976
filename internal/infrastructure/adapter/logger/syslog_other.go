//go:build windows || plan9

package logger

import (
	"errors"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
)

// SyslogSink is unavailable on this platform
type SyslogSink struct{}

// NewSyslogSink always fails on this platform
func NewSyslogSink(string) (*SyslogSink, error) {
	return nil, errors.New("system log is not supported on this platform")
}

// Write is never reached
func (*SyslogSink) Write(core.Severity, string) error { return nil }

// Close is never reached
func (*SyslogSink) Close() error { return nil }
