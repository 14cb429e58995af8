package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]pterm.LogLevel{
		"debug":    pterm.LogLevelDebug,
		"INFO":     pterm.LogLevelInfo,
		"":         pterm.LogLevelWarn,
		"error":    pterm.LogLevelError,
		"disabled": pterm.LogLevelDisabled,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown", logger.Args("account", 1234))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "1234") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bank.log")

	logger, closeFn, err := Open("info", path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("deposit", logger.Args("amount", "10.00"))
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "deposit") {
		t.Fatalf("log file = %q", data)
	}
}
