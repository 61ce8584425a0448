package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"fatal", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New("test-service")

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.Name() != "test-service" {
		t.Errorf("Name() = %v, want test-service", logger.Name())
	}
	if logger.Enabled(LevelInfo) {
		t.Error("default level should be warn")
	}
}

func TestNewLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "repl",
		Level:       "debug",
		Output:      &buf,
	})

	logger.Debug("command applied", "input", "5", "display", "5")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", `msg="command applied"`, "logger=repl", "input=5", "display=5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "repl",
		Level:       "info",
		Format:      "json",
		Output:      &buf,
	})

	logger.Warn("command failed", "code", "DIVISION_BY_ZERO")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "command failed" {
		t.Errorf("msg = %v, want %q", record["msg"], "command failed")
	}
	if record["code"] != "DIVISION_BY_ZERO" {
		t.Errorf("code = %v, want DIVISION_BY_ZERO", record["code"])
	}
	if record["logger"] != "repl" {
		t.Errorf("logger = %v, want repl", record["logger"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("records below warn were written: %q", buf.String())
	}

	logger.SetLevel(LevelDebug)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug record missing after SetLevel: %q", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Output: &buf})
	child := logger.With("session_id", "abc")

	child.Info("started")
	if !strings.Contains(buf.String(), "session_id=abc") {
		t.Errorf("output %q does not contain session_id", buf.String())
	}

	logger.SetLevel(LevelError)
	if child.Enabled(LevelInfo) {
		t.Error("child should share the parent level")
	}
}

func TestLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("started")
	if !strings.Contains(primary.String(), "started") {
		t.Errorf("primary output = %q", primary.String())
	}
	if !strings.Contains(extra.String(), "started") {
		t.Errorf("additional output = %q", extra.String())
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("discarded", "key", "value")
}
