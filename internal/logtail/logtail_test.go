package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clusterfav.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestTail(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	logPath := writeLog(t, all)

	tests := []struct {
		name     string
		lines    int
		expected []string
	}{
		{name: "read all (0)", lines: 0, expected: all},
		{name: "read all (negative)", lines: -1, expected: all},
		{name: "read partial (5)", lines: 5, expected: all[5:]},
		{name: "read exactly all (10)", lines: 10, expected: all},
		{name: "read more than exists (20)", lines: 20, expected: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, Options{Lines: tt.lines})
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tail() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTailMatch(t *testing.T) {
	logPath := writeLog(t, []string{
		"2024-05-01T12:00:00Z INF favorites opened component=app",
		"2024-05-01T12:00:01Z WRN save favorites failed component=persist",
		"2024-05-01T12:00:02Z DBG favorites changed component=events",
		"2024-05-01T12:00:03Z WRN save favorites failed component=PERSIST",
	})

	got, err := Tail(logPath, Options{Match: "component=persist"})
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Tail() matched %d lines, want 2: %v", len(got), got)
	}

	got, err = Tail(logPath, Options{Lines: 1, Match: "wrn"})
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(got) != 1 || !strings.HasSuffix(got[0], "component=PERSIST") {
		t.Fatalf("Tail() = %v, want the last warning", got)
	}
}

func TestTailMissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "missing.log"), Options{Lines: 10})
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Tail() = %v, want nil", got)
	}
}
