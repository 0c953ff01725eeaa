package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLogs(t *testing.T, kind string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(baseDir, "logs", kind+"-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("%s logs: %v %v", kind, matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLoggingWritesFilesAndCloses(t *testing.T) {
	withTempBase(t)
	t.Cleanup(func() {
		closeLogs()
		errorLogger, debugLogger = nil, nil
	})

	setupLogging(true)
	logError("sweep failed: %v", "disk full")
	logDebug("settled at %d,%d", 46, 46)
	if len(logFiles) != 2 {
		t.Fatalf("%d log files open; want 2", len(logFiles))
	}
	closeLogs()
	if len(logFiles) != 0 {
		t.Fatalf("log files still tracked after close")
	}

	if got := readLogs(t, "error"); !strings.Contains(got, "sweep failed: disk full") {
		t.Fatalf("error log = %q", got)
	}
	if got := readLogs(t, "debug"); !strings.Contains(got, "settled at 46,46") {
		t.Fatalf("debug log = %q", got)
	}

	// logging after close must not touch the closed files
	logError("late")
	if got := readLogs(t, "error"); strings.Contains(got, "late") {
		t.Fatalf("closed error log was written to")
	}
}

func TestDebugLoggingOff(t *testing.T) {
	withTempBase(t)
	t.Cleanup(func() {
		closeLogs()
		errorLogger, debugLogger = nil, nil
	})
	setupLogging(false)
	if debugLogger != nil {
		t.Fatalf("debug logger set while disabled")
	}
	logDebug("dropped")
	if matches, _ := filepath.Glob(filepath.Join(baseDir, "logs", "debug-*.log")); len(matches) != 0 {
		t.Fatalf("debug log created while disabled: %v", matches)
	}
}
