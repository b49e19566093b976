package core

import (
	"fmt"
	"strings"
)

// Severity represents logging severity levels, ordered from most to least verbose.
// The zero value is SeverityNone, which as a threshold disables a sink.
type Severity int

const (
	// SeverityNone disables a sink when used as its threshold
	SeverityNone Severity = iota
	// SeverityDebug for detailed debug information
	SeverityDebug
	// SeverityInfo for general operational information
	SeverityInfo
	// SeverityWarning for warnings
	SeverityWarning
	// SeverityError for errors
	SeverityError
)

// String returns the short label used in rendered log lines
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DBG"
	case SeverityInfo:
		return "INF"
	case SeverityWarning:
		return "WRN"
	case SeverityError:
		return "ERR"
	default:
		return "NONE"
	}
}

// Name returns the configuration name of the severity
func (s Severity) Name() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// Allows reports whether a sink configured with threshold s emits a message of severity msg
func (s Severity) Allows(msg Severity) bool {
	return s != SeverityNone && msg != SeverityNone && msg >= s
}

// ParseSeverity converts a configuration value into a Severity
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "off", "disabled":
		return SeverityNone, nil
	case "debug", "dbg":
		return SeverityDebug, nil
	case "info", "inf":
		return SeverityInfo, nil
	case "warning", "warn", "wrn":
		return SeverityWarning, nil
	case "error", "err":
		return SeverityError, nil
	default:
		return SeverityNone, fmt.Errorf("unknown severity %q", value)
	}
}

// Logger defines the log routing operations
type Logger interface {
	// Log renders the message once and routes it to every sink enabled for the severity
	Log(severity Severity, format string, args ...any)
	// LogMsg routes an already rendered message, appending " (path)" when path is set
	LogMsg(severity Severity, message, path string)
}
