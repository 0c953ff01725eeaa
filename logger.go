package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger

	// open log files, closed by closeLogs at exit
	logFiles []*os.File
)

// openLog returns a writer that copies to stdout and to logs/<kind>-<time>.log
// under baseDir. If the file can't be created it logs to stdout only.
func openLog(kind string) io.Writer {
	dir := filepath.Join(baseDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create log directory: %v\n", err)
		return os.Stdout
	}
	name := fmt.Sprintf("%s-%s.log", kind, time.Now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s log: %v\n", kind, err)
		return os.Stdout
	}
	logFiles = append(logFiles, f)
	return io.MultiWriter(os.Stdout, f)
}

func setupLogging(debug bool) {
	w := openLog("error")
	errorLogger = log.New(w, "", log.LstdFlags)
	log.SetOutput(w)
	setDebugLogging(debug)
}

func setDebugLogging(enabled bool) {
	if !enabled {
		debugLogger = nil
		return
	}
	debugLogger = log.New(openLog("debug"), "", log.LstdFlags|log.Lmicroseconds)
}

// closeLogs flushes and closes the log files. Later log calls still reach
// stdout.
func closeLogs() {
	log.SetOutput(os.Stdout)
	errorLogger = log.New(os.Stdout, "", log.LstdFlags)
	if debugLogger != nil {
		debugLogger = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	}
	for _, f := range logFiles {
		f.Sync()
		f.Close()
	}
	logFiles = nil
}

func logError(format string, v ...any) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
		return
	}
	log.Printf(format, v...)
}

func logDebug(format string, v ...any) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
