package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityAllows(t *testing.T) {
	testCases := []struct {
		name      string
		threshold Severity
		message   Severity
		expected  bool
	}{
		{"DisabledSink", SeverityNone, SeverityError, false},
		{"SameSeverity", SeverityWarning, SeverityWarning, true},
		{"BelowThreshold", SeverityWarning, SeverityInfo, false},
		{"AboveThreshold", SeverityWarning, SeverityError, true},
		{"DebugSinkTakesAll", SeverityDebug, SeverityDebug, true},
		{"NoneMessage", SeverityDebug, SeverityNone, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.threshold.Allows(tc.message))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	testCases := []struct {
		input    string
		expected Severity
	}{
		{"", SeverityNone},
		{"none", SeverityNone},
		{"DEBUG", SeverityDebug},
		{"info", SeverityInfo},
		{"warn", SeverityWarning},
		{"warning", SeverityWarning},
		{" error ", SeverityError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			sev, err := ParseSeverity(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sev)
		})
	}

	_, err := ParseSeverity("verbose")
	assert.Error(t, err)
}

func TestSeverityLabels(t *testing.T) {
	assert.Equal(t, "ERR", SeverityError.String())
	assert.Equal(t, "WRN", SeverityWarning.String())
	assert.Equal(t, "INF", SeverityInfo.String())
	assert.Equal(t, "DBG", SeverityDebug.String())
	assert.Equal(t, "warning", SeverityWarning.Name())
}
