// Package debuglog routes the standard logger to a rotating file under logs/
// when a frontend runs with -debug. Without it, log output is discarded so
// nothing reaches the terminal the game is drawing on.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Dir holds every frontend's log file
	Dir = "logs"
	// MaxSize triggers rotation of an existing log on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup points the standard logger at Dir/name and returns the open file.
// Returns nil when debug is off or the file cannot be opened.
func Setup(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(Dir, name)
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("==== %s started ====", name)
	return f
}

// rotate renames an oversized log to name_<timestamp>.log
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	// A failed rename leaves the old file in place and appends to it
	_ = os.Rename(path, rotated)
}
