package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{" WARN ", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInit_JSONOutputCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Output: &bytes.Buffer{}}) })

	log := WithComponent("persist")
	log.Info().Msg("saved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["component"] != "persist" {
		t.Fatalf("component = %v, want persist", entry["component"])
	}
	if entry["message"] != "saved" {
		t.Fatalf("message = %v, want saved", entry["message"])
	}
}

func TestInit_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: WarnLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Output: &bytes.Buffer{}}) })

	Logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
	Logger.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Fatal("warn line not written at warn level")
	}
}

func TestInit_NoColorConsoleIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, Output: &buf, NoColor: true})
	t.Cleanup(func() { Init(Config{Output: &bytes.Buffer{}}) })

	log := WithComponent("events")
	log.Info().Msg("favorites changed")

	line := buf.String()
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("log line has ANSI escapes: %q", line)
	}
	if !strings.Contains(line, "component=events") {
		t.Fatalf("log line %q lacks component=events", line)
	}
}

func TestWithCluster(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Output: &bytes.Buffer{}}) })

	log := WithCluster("abc")
	log.Info().Msg("cluster selected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["cluster_id"] != "abc" {
		t.Fatalf("cluster_id = %v, want abc", entry["cluster_id"])
	}
}
