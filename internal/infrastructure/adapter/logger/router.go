package logger

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// Sink is a destination for rendered log lines
type Sink interface {
	// Write emits one rendered line at the given severity
	Write(severity core.Severity, line string) error
	// Close flushes buffered data and releases resources
	Close() error
}

// Thresholds holds the minimum severity for each sink.
// SeverityNone disables a sink.
type Thresholds struct {
	Console core.Severity
	Syslog  core.Severity
}

// Router implements the Logger port by fanning each message out to the
// console and system log sinks, each filtered by its own threshold.
//
// Thresholds are meant to be configured once at startup; the setters are safe
// to call later but a message being routed concurrently may see either value.
type Router struct {
	console Sink
	syslog  Sink

	consoleLevel *atomic.Int32
	syslogLevel  *atomic.Int32
}

// NewRouter creates a router. Either sink may be nil, which disables it
// regardless of its threshold.
func NewRouter(thresholds Thresholds, console, syslog Sink) *Router {
	return &Router{
		console:      console,
		syslog:       syslog,
		consoleLevel: atomic.NewInt32(int32(thresholds.Console)),
		syslogLevel:  atomic.NewInt32(int32(thresholds.Syslog)),
	}
}

// SetConsoleThreshold sets the minimum severity written to the console sink
func (r *Router) SetConsoleThreshold(severity core.Severity) {
	r.consoleLevel.Store(int32(severity))
}

// SetSyslogThreshold sets the minimum severity written to the system log sink
func (r *Router) SetSyslogThreshold(severity core.Severity) {
	r.syslogLevel.Store(int32(severity))
}

// Thresholds returns the current thresholds
func (r *Router) Thresholds() Thresholds {
	return Thresholds{
		Console: core.Severity(r.consoleLevel.Load()),
		Syslog:  core.Severity(r.syslogLevel.Load()),
	}
}

// Log renders the message once and routes it
func (r *Router) Log(severity core.Severity, format string, args ...any) {
	if !r.enabled(severity) {
		return
	}
	r.LogMsg(severity, fmt.Sprintf(format, args...), "")
}

// LogMsg routes an already rendered message with an optional node path
func (r *Router) LogMsg(severity core.Severity, message, path string) {
	if !r.enabled(severity) {
		return
	}

	line := FormatLine(severity, message, path)
	th := r.Thresholds()
	if r.console != nil && th.Console.Allows(severity) {
		deliver(r.console, severity, line)
	}
	if r.syslog != nil && th.Syslog.Allows(severity) {
		deliver(r.syslog, severity, line)
	}
}

// Debugf logs at debug severity
func (r *Router) Debugf(format string, args ...any) {
	r.Log(core.SeverityDebug, format, args...)
}

// Infof logs at info severity
func (r *Router) Infof(format string, args ...any) {
	r.Log(core.SeverityInfo, format, args...)
}

// Warnf logs at warning severity
func (r *Router) Warnf(format string, args ...any) {
	r.Log(core.SeverityWarning, format, args...)
}

// Close closes both sinks and reports every failure
func (r *Router) Close() error {
	var err error
	if r.console != nil {
		err = multierr.Append(err, r.console.Close())
	}
	if r.syslog != nil {
		err = multierr.Append(err, r.syslog.Close())
	}
	return err
}

func (r *Router) enabled(severity core.Severity) bool {
	th := r.Thresholds()
	return (r.console != nil && th.Console.Allows(severity)) ||
		(r.syslog != nil && th.Syslog.Allows(severity))
}

// FormatLine renders "[SEV] message (path)", omitting the path when empty
func FormatLine(severity core.Severity, message, path string) string {
	var b strings.Builder
	b.Grow(len(message) + len(path) + 8)
	b.WriteByte('[')
	b.WriteString(severity.String())
	b.WriteString("] ")
	b.WriteString(message)
	if path != "" {
		b.WriteString(" (")
		b.WriteString(path)
		b.WriteByte(')')
	}
	return b.String()
}

// deliver writes to one sink; a failing sink never affects the caller or other sinks
func deliver(sink Sink, severity core.Severity, line string) {
	defer func() {
		_ = recover()
	}()
	_ = sink.Write(severity, line)
}
