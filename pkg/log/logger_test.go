package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	})
	return &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLogs(t, Info)
	logger := New("test")

	logger.Debug("hidden message")
	logger.Infof("rendered %d rows", 12)
	logger.Warning("careful")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Debug message should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "rendered 12 rows") {
		t.Errorf("Expected info message in output: %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output: %q", out)
	}
	if !strings.Contains(out, "careful") {
		t.Errorf("Expected warning message in output: %q", out)
	}
}

func TestLogger_ModuleLevel(t *testing.T) {
	buf := captureLogs(t, Warning)
	SetModuleLevel("chatty", Debug)

	New("chatty").Debug("from chatty")
	New("quiet").Info("from quiet")

	out := buf.String()
	if !strings.Contains(out, "from chatty") {
		t.Errorf("Expected module override to allow debug output: %q", out)
	}
	if strings.Contains(out, "from quiet") {
		t.Errorf("Expected info to be filtered for other modules: %q", out)
	}
	if !Enabled("chatty", Debug) || Enabled("quiet", Info) {
		t.Error("Enabled disagrees with configured levels")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"Warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	if Debug.String() != "debug" || Error.String() != "error" {
		t.Error("Unexpected level names")
	}
	if Level(42).String() != "level(42)" {
		t.Errorf("Unexpected unknown level name %q", Level(42).String())
	}
}
