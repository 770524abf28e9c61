// Package log provides file-backed logging for the viewport subsystem and
// its inspector binary. Messages never go to stdout/stderr because the
// inspector owns the terminal.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	globalLogFile *os.File
	logFileName   = filepath.Join(os.TempDir(), "smartdealsiq.log")
)

// Initialize opens the log file and sets up the shared loggers. It must be
// called once at startup, before any package logs. If the file cannot be
// opened, the loggers are still non-nil and discard their output.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		return
	}

	globalLogFile = f
	InfoLog = log.New(f, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	InitTrace()
}

// Close flushes and closes the log file. Safe to call when Initialize failed.
func Close() {
	CloseTrace()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
	}
}

// Path returns the location of the log file so commands can point users at it.
func Path() string {
	return logFileName
}

// Warning logs a warning if the loggers are initialized, otherwise it is a
// no-op. Convenience for callers that run before Initialize (e.g. cobra
// argument validation).
func Warning(format string, v ...interface{}) {
	if WarningLog != nil {
		WarningLog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Info is the nil-safe counterpart of Warning for informational messages.
func Info(format string, v ...interface{}) {
	if InfoLog != nil {
		InfoLog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Error is the nil-safe counterpart of Warning for errors.
func Error(format string, v ...interface{}) {
	if ErrorLog != nil {
		ErrorLog.Output(2, fmt.Sprintf(format, v...))
	}
}
