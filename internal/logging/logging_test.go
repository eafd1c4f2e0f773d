package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duolist.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetVerbose(false)
		SetTraceEnabled(false)
	})
	return path
}

func TestInfoWritesWhenVerbose(t *testing.T) {
	path := useTempLog(t)
	SetVerbose(true)

	Info("loaded %d items", 7)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
	if !strings.Contains(string(data), "loaded 7 items") {
		t.Fatalf("expected info line in log, got %q", string(data))
	}
}

func TestInfoSilentWithoutVerbose(t *testing.T) {
	path := useTempLog(t)
	SetVerbose(false)

	Info("loaded %d items", 7)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got stat err %v", err)
	}
}

func TestTraceHonoursToggle(t *testing.T) {
	path := useTempLog(t)

	Trace("app.start", map[string]interface{}{"field": "tags"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace entry while disabled, got stat err %v", err)
	}

	SetTraceEnabled(true)
	Trace("app.start", map[string]interface{}{"field": "tags"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
	if !strings.Contains(string(data), `"event":"app.start"`) {
		t.Fatalf("expected trace entry in log, got %q", string(data))
	}
}
