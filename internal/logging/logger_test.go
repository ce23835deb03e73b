package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello", "run", "abc")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", record["msg"])
	}
}

func TestNewConsoleDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("started")
	if !strings.Contains(buf.String(), "started") {
		t.Errorf("output %q missing message", buf.String())
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New(xml) = nil error, want error")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("output %q, want no records below warn", buf.String())
	}
	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("output %q missing warn record", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
