package debuglog

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

const testName = "test.log"

// chdirTemp runs the test inside a scratch directory so logs/ never lands in the source tree
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		_ = os.Chdir(wd)
	})
}

func TestSetup_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := Setup(false, testName)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if out := log.Writer(); out != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", out)
	}
	if _, err := os.Stat(Dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := Setup(true, testName)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(Dir, testName)
	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetup_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(Dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(Dir, testName)
	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := Setup(true, testName)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(Dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != testName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", MaxSize, info.Size())
	}
}

func TestSetup_NoStdoutStderr(t *testing.T) {
	chdirTemp(t)

	logFile := Setup(true, testName)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Error("Log output should go to the file, not stdout or stderr")
	}
}
