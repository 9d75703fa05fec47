// Package debug provides conditional debug logging for the pattern engine.
//
// Debug logging is enabled by setting the PATTERNS_DEBUG environment variable:
//
//	PATTERNS_DEBUG=1 patterns -view tree
//
// When enabled, every dispatched key or pointer action is written to stderr
// with a timestamp. When disabled (default), all debug functions are no-ops.
//
// Usage:
//
//	import "github.com/vanderheijden86/ariapatterns/pkg/debug"
//
//	func (t *Tree[V]) OnKeydown(e keys.KeyEvent) bool {
//	    debug.Log("tree: %s", e)
//	    // ...
//	}
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
)

const prefix = "[PATTERNS] "

var (
	// enabled is true when PATTERNS_DEBUG env var is set
	enabled bool
	// logger writes to stderr with [PATTERNS] prefix
	logger *log.Logger
)

func init() {
	if os.Getenv("PATTERNS_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
// Note: This also initializes the logger if not already done.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output, e.g. to a file while a TUI owns the
// terminal, or to a buffer in tests.
func SetOutput(w io.Writer) {
	if logger == nil {
		logger = log.New(w, prefix, log.Ltime|log.Lmicroseconds)
		return
	}
	logger.SetOutput(w)
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !enabled || !cond {
		return
	}
	logger.Printf(format, args...)
}

// Dump logs a value with its type for debugging complex structures.
func Dump(name string, v any) {
	if !enabled {
		return
	}
	logger.Printf("%s: %T = %+v", name, v, v)
}

// Assert logs a message and panics if the condition is false.
// Only active when debug is enabled.
func Assert(cond bool, msg string) {
	if !enabled {
		return
	}
	if !cond {
		logger.Printf("ASSERTION FAILED: %s", msg)
		panic(fmt.Sprintf("debug assertion failed: %s", msg))
	}
}
