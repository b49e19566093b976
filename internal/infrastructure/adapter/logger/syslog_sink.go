//go:build !windows && !plan9

package logger

import (
	"log/syslog"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
)

// SyslogSink writes rendered lines to the system log
type SyslogSink struct {
	writer *syslog.Writer
}

// NewSyslogSink connects to the local system log daemon with the given tag
func NewSyslogSink(tag string) (*SyslogSink, error) {
	w, err := syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, err
	}
	return &SyslogSink{writer: w}, nil
}

// Write emits the line with the syslog priority matching severity
func (s *SyslogSink) Write(severity core.Severity, line string) error {
	switch severity {
	case core.SeverityError:
		return s.writer.Err(line)
	case core.SeverityWarning:
		return s.writer.Warning(line)
	case core.SeverityInfo:
		return s.writer.Info(line)
	default:
		return s.writer.Debug(line)
	}
}

// Close closes the connection to the system log
func (s *SyslogSink) Close() error {
	return s.writer.Close()
}
