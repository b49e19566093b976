package logger

import (
	"errors"
	"os"
	"syscall"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes rendered lines through a zap core
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink writing plain lines to the given writer.
// The encoder only emits the message, which already carries severity and path.
func NewZapSink(w zapcore.WriteSyncer) *ZapSink {
	encCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		LineEnding: zapcore.DefaultLineEnding,
	}

	zapCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(w),
		zap.DebugLevel,
	)

	return &ZapSink{logger: zap.New(zapCore)}
}

// NewConsoleSink creates the standard error console sink
func NewConsoleSink() *ZapSink {
	return NewZapSink(zapcore.AddSync(os.Stderr))
}

// Write emits the line at the zap level matching severity
func (s *ZapSink) Write(severity core.Severity, line string) error {
	if ce := s.logger.Check(toZapLevel(severity), line); ce != nil {
		ce.Write()
	}
	return nil
}

// Close flushes buffered output. Terminals and pipes that cannot be synced are not an error.
func (s *ZapSink) Close() error {
	err := s.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

func toZapLevel(severity core.Severity) zapcore.Level {
	switch severity {
	case core.SeverityDebug:
		return zap.DebugLevel
	case core.SeverityInfo:
		return zap.InfoLevel
	case core.SeverityWarning:
		return zap.WarnLevel
	case core.SeverityError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
