package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type entry struct {
	severity core.Severity
	line     string
}

type recordingSink struct {
	entries  []entry
	writeErr error
	closeErr error
	panics   bool
	closed   bool
}

func (s *recordingSink) Write(severity core.Severity, line string) error {
	if s.panics {
		panic("sink exploded")
	}
	s.entries = append(s.entries, entry{severity, line})
	return s.writeErr
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeErr
}

func (s *recordingSink) lines() []string {
	var out []string
	for _, e := range s.entries {
		out = append(out, e.line)
	}
	return out
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "[ERR] bad value (/a/b)", FormatLine(core.SeverityError, "bad value", "/a/b"))
	assert.Equal(t, "[WRN] disk almost full", FormatLine(core.SeverityWarning, "disk almost full", ""))
}

func TestRouterThresholds(t *testing.T) {
	severities := []core.Severity{
		core.SeverityDebug, core.SeverityInfo, core.SeverityWarning, core.SeverityError,
	}

	for _, threshold := range append([]core.Severity{core.SeverityNone}, severities...) {
		t.Run("console-"+threshold.Name(), func(t *testing.T) {
			console := &recordingSink{}
			syslog := &recordingSink{}
			router := NewRouter(Thresholds{Console: threshold, Syslog: core.SeverityDebug}, console, syslog)

			for _, sev := range severities {
				router.LogMsg(sev, "msg", "")
			}

			// the other sink is unaffected by this sink's threshold
			assert.Len(t, syslog.entries, len(severities))

			var expected []core.Severity
			for _, sev := range severities {
				if threshold != core.SeverityNone && sev >= threshold {
					expected = append(expected, sev)
				}
			}
			var got []core.Severity
			for _, e := range console.entries {
				got = append(got, e.severity)
			}
			assert.Equal(t, expected, got)
		})
	}
}

func TestRouterDefaultsDisabled(t *testing.T) {
	console := &recordingSink{}
	syslog := &recordingSink{}
	router := NewRouter(Thresholds{}, console, syslog)

	router.Log(core.SeverityError, "failure %d", 1)

	assert.Empty(t, console.entries)
	assert.Empty(t, syslog.entries)
}

func TestRouterLog(t *testing.T) {
	console := &recordingSink{}
	router := NewRouter(Thresholds{Console: core.SeverityDebug}, console, nil)

	router.Log(core.SeverityInfo, "loaded %d modules from %s", 3, "/etc")
	router.LogMsg(core.SeverityError, "bad value", "/a/b")
	router.Debugf("plain")
	router.Infof("n=%d", 1)
	router.Warnf("50%% done")

	assert.Equal(t, []string{
		"[INF] loaded 3 modules from /etc",
		"[ERR] bad value (/a/b)",
		"[DBG] plain",
		"[INF] n=1",
		"[WRN] 50% done",
	}, console.lines())
}

func TestRouterSinkFailures(t *testing.T) {
	t.Run("Write error does not stop other sink", func(t *testing.T) {
		console := &recordingSink{writeErr: errors.New("broken pipe")}
		syslog := &recordingSink{}
		router := NewRouter(Thresholds{Console: core.SeverityDebug, Syslog: core.SeverityDebug}, console, syslog)

		assert.NotPanics(t, func() { router.LogMsg(core.SeverityError, "boom", "") })
		assert.Equal(t, []string{"[ERR] boom"}, syslog.lines())
	})

	t.Run("Panicking sink is contained", func(t *testing.T) {
		console := &recordingSink{panics: true}
		syslog := &recordingSink{}
		router := NewRouter(Thresholds{Console: core.SeverityDebug, Syslog: core.SeverityDebug}, console, syslog)

		assert.NotPanics(t, func() { router.LogMsg(core.SeverityWarning, "boom", "") })
		assert.Equal(t, []string{"[WRN] boom"}, syslog.lines())
	})
}

func TestRouterSetThresholds(t *testing.T) {
	console := &recordingSink{}
	syslog := &recordingSink{}
	router := NewRouter(Thresholds{}, console, syslog)

	router.SetConsoleThreshold(core.SeverityWarning)
	router.SetSyslogThreshold(core.SeverityError)
	assert.Equal(t, Thresholds{Console: core.SeverityWarning, Syslog: core.SeverityError}, router.Thresholds())

	router.LogMsg(core.SeverityWarning, "w", "")
	router.LogMsg(core.SeverityError, "e", "")

	assert.Equal(t, []string{"[WRN] w", "[ERR] e"}, console.lines())
	assert.Equal(t, []string{"[ERR] e"}, syslog.lines())
}

func TestRouterClose(t *testing.T) {
	console := &recordingSink{closeErr: errors.New("console")}
	syslog := &recordingSink{closeErr: errors.New("syslog")}
	router := NewRouter(Thresholds{}, console, syslog)

	err := router.Close()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.True(t, console.closed)
	assert.True(t, syslog.closed)

	assert.NoError(t, NewRouter(Thresholds{}, nil, nil).Close())
}

func TestZapSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZapSink(zapcore.AddSync(&buf))
	router := NewRouter(Thresholds{Console: core.SeverityInfo}, sink, nil)

	router.LogMsg(core.SeverityDebug, "hidden", "")
	router.LogMsg(core.SeverityError, "bad value", "/a/b")
	router.Log(core.SeverityInfo, "started")

	require.NoError(t, sink.Close())
	assert.Equal(t, "[ERR] bad value (/a/b)\n[INF] started\n", buf.String())
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	assert.NotPanics(t, func() {
		logger.Log(core.SeverityError, "x %d", 1)
		logger.LogMsg(core.SeverityError, "x", "/p")
	})
}
