package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Trace mode configuration. Enable by setting SDIQ_TRACE=1; every dimension
// event and classification result is then appended to a trace file so resize
// storms can be replayed after the fact.
var (
	TraceEnabled bool
	TraceLog     *log.Logger
	traceLogFile *os.File
)

var traceLogFileName = filepath.Join(os.TempDir(), "smartdealsiq-trace.log")

// InitTrace initializes trace logging if SDIQ_TRACE=1 is set.
// Called from Initialize; safe to call again.
func InitTrace() {
	if os.Getenv("SDIQ_TRACE") != "1" {
		// No-op logger so call sites never need a nil check.
		TraceLog = log.New(io.Discard, "", 0)
		return
	}

	TraceEnabled = true

	f, err := os.OpenFile(traceLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open trace log file: %s", err)
		}
		TraceLog = log.New(io.Discard, "", 0)
		return
	}

	TraceLog = log.New(f, "TRACE:", log.Ldate|log.Ltime|log.Lmicroseconds)
	traceLogFile = f

	TraceLog.Println("trace mode enabled")
	TraceLog.Printf("trace log: %s", traceLogFileName)
}

// CloseTrace closes the trace log file.
func CloseTrace() {
	if traceLogFile != nil {
		_ = traceLogFile.Close()
		traceLogFile = nil
		fmt.Println("wrote trace logs to " + traceLogFileName)
	}
}

// EventTrace logs a dimension-change event delivered by the host.
func EventTrace(format string, v ...interface{}) {
	if TraceEnabled && TraceLog != nil {
		TraceLog.Printf("[EVENT] "+format, v...)
	}
}

// ClassifyTrace logs the outcome of a classification pass.
func ClassifyTrace(format string, v ...interface{}) {
	if TraceEnabled && TraceLog != nil {
		TraceLog.Printf("[CLASSIFY] "+format, v...)
	}
}

// EventCounter tracks how many dimension events each source delivered.
// Only updated in trace mode; used by the watch command's final summary.
type EventCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	since  time.Time
}

var counter = &EventCounter{counts: make(map[string]int64), since: time.Now()}

// GetEventCounter returns the shared event counter.
func GetEventCounter() *EventCounter {
	return counter
}

// Record increments the event count for a source.
func (c *EventCounter) Record(source string) {
	if !TraceEnabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[source]++
}

// Summary returns a one-line per-source event count report.
func (c *EventCounter) Summary() string {
	if !TraceEnabled {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	out := fmt.Sprintf("events since %s:", c.since.Format(time.TimeOnly))
	for source, n := range c.counts {
		out += fmt.Sprintf(" %s=%d", source, n)
	}
	return out
}
