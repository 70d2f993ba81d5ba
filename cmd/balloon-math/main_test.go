package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/balloon-math/cmd/internal/debuglog"
)

// TestStartupErrorReachesLog verifies a bad catalog fails without a screen and the log keeps the reason
func TestStartupErrorReachesLog(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	prev := *levelsFlag
	*levelsFlag = "missing.yaml"
	t.Cleanup(func() { *levelsFlag = prev })

	logFile := debuglog.Setup(true, "startup.log")
	if logFile == nil {
		t.Fatal("Expected log file")
	}
	code := run()
	logFile.Close()

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	data, err := os.ReadFile(filepath.Join(debuglog.Dir, "startup.log"))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "startup:") || !strings.Contains(string(data), "missing.yaml") {
		t.Errorf("Expected startup error in log, got %q", data)
	}
}
