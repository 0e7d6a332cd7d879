// Package logger provides verbose logging for menugen.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow menu generation meal by meal.
// Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// level prefixes one log line. The zero value marks a section header.
type level string

const (
	levelSection level = ""
	levelDebug   level = "DEBUG"
	levelInfo    level = "INFO"
	levelWarn    level = "WARN"
	levelError   level = "ERROR"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// emit writes one entry. Writes are serialized so w need not be safe for
// concurrent use.
func emit(lvl level, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if lvl != levelError && !verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if lvl == levelSection {
		fmt.Fprintf(output, "\n=== %s ===\n", msg)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", lvl, msg)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { emit(levelDebug, format, args) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { emit(levelInfo, format, args) }

// Warn prints a warning if verbose mode is enabled, e.g. a meal that
// did not converge.
func Warn(format string, args ...any) { emit(levelWarn, format, args) }

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) { emit(levelError, format, args) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) { emit(levelSection, "%s", []any{name}) }
