package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityDebug, "DEBUG"},
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.severity.String()
			if got != tt.expected {
				t.Errorf("Severity.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger(LoggerOptions{Name: "errno", Level: "info", Out: &out})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("hello")
	if !strings.Contains(out.String(), "hello") {
		t.Errorf("output should contain message, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "errno") {
		t.Errorf("output should contain logger name, got: %s", out.String())
	}
}

func TestNewLoggerPretty(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger(LoggerOptions{Level: "debug", Pretty: true, Out: &out})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Debug("pretty message")
	if !strings.Contains(out.String(), "pretty message") {
		t.Errorf("output should contain message, got: %s", out.String())
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, err := NewLogger(LoggerOptions{Level: "loud"}); err == nil {
		t.Error("NewLogger() with unknown level should fail")
	}
}

func TestZeroLogger_Logf(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerWithWriter(&out, SeverityInfo)

	logger.Logf(SeverityInfo, "formatted %s %d", "test", 123)

	if !strings.Contains(out.String(), "formatted test 123") {
		t.Errorf("Logf output should contain formatted message, got: %s", out.String())
	}
}

func TestZeroLogger_Error(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerWithWriter(&out, SeverityInfo)

	logger.Error(errors.New("test error"))
	if !strings.Contains(out.String(), "test error") {
		t.Errorf("Error output should contain error message, got: %s", out.String())
	}

	out.Reset()
	logger.Error(nil)
	if out.Len() != 0 {
		t.Errorf("Error(nil) should not log anything, got: %s", out.String())
	}
}

func TestZeroLogger_MinLevel(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerWithWriter(&out, SeverityWarning)

	logger.Debug("debug message")
	logger.Info("info message")
	if out.Len() != 0 {
		t.Errorf("Debug and Info should not be logged when minLevel is Warning, got: %s", out.String())
	}

	logger.Warning("warning message")
	if !strings.Contains(out.String(), "warning message") {
		t.Errorf("Warning should be logged, got: %s", out.String())
	}
}

func TestZeroLogger_Child(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerWithWriter(&out, SeverityDebug).Child("curlgen")

	logger.Info("scan done")
	if !strings.Contains(out.String(), `"component":"curlgen"`) {
		t.Errorf("child output should carry its name, got: %s", out.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	if logger == nil {
		t.Fatal("NewNoOpLogger() returned nil")
	}

	// All these should do nothing and not panic
	logger.Log(SeverityInfo, "test")
	logger.Logf(SeverityInfo, "test %s", "formatted")
	logger.Error(errors.New("test error"))
	logger.Debug("debug")
	logger.Info("info")
	logger.Warning("warning")
}
