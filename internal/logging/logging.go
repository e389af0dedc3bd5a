// Package logging writes diagnostics to stderr, keeping stdout free for
// result paths.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var errorPrefix = color.New(color.FgRed, color.Bold).Sprint("ERROR:")

// Logger provides quiet-aware diagnostic output.
type Logger struct {
	quiet bool
	out   io.Writer
}

// NewLogger creates a logger writing to stderr.
func NewLogger(quiet bool) *Logger {
	return &Logger{quiet: quiet, out: os.Stderr}
}

// NewLoggerTo creates a logger writing to w; used in tests.
func NewLoggerTo(quiet bool, w io.Writer) *Logger {
	return &Logger{quiet: quiet, out: w}
}

// Info logs an informational message unless the logger is quiet.
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Error logs an error message. Errors are never suppressed.
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.out, errorPrefix+" "+format+"\n", args...)
}

// PrintSummary prints the run counters. It ignores the quiet flag: the
// summary is requested explicitly and the explicit request wins.
func (l *Logger) PrintSummary(records, duplicate, ignored, emitted int, duration time.Duration) {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, "=== Summary ===")
	fmt.Fprintf(l.out, "Records: %d\n", records)
	fmt.Fprintf(l.out, "Duplicates: %d\n", duplicate)
	fmt.Fprintf(l.out, "Ignored: %d\n", ignored)
	fmt.Fprintf(l.out, "Unique: %d\n", emitted)
	fmt.Fprintf(l.out, "Duration: %s\n", duration.Round(time.Millisecond))
}
