// Package selflog provides internal diagnostic logging for overlog.
//
// The override core must never let a broken sink configuration crash or
// silently swallow the reason logs stopped appearing. When enabled,
// selflog captures construction failures, rejected descriptors, and
// handler I/O errors that are otherwise reported only as nil results.
//
// Enable selflog to write to stderr:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Enable with a custom callback:
//
//	selflog.EnableFunc(func(msg string) {
//	    hostLog.Warn(msg)
//	})
//
// Messages are formatted as:
//
//	2026-01-29T15:30:45Z [component] message details
package selflog

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// outputWriter holds the current io.Writer (atomic pointer)
	outputWriter atomic.Pointer[io.Writer]
	// outputFunc holds the current callback (atomic pointer)
	outputFunc atomic.Pointer[func(string)]
)

// Enable activates self-logging to the provided writer.
// The writer should be thread-safe or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging using a callback function.
// The function will be called with formatted log messages.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// IsEnabled reports whether self-logging is currently active.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// Printf logs an internal diagnostic message. The format string should
// name the component in square brackets, e.g. "[factory] build failed: %v".
func Printf(format string, args ...interface{}) {
	// Fast path: check if disabled before formatting anything
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	msg := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)

	if fn != nil {
		(*fn)(msg)
		return
	}
	if w != nil {
		fmt.Fprintln(*w, msg)
	}
}

// syncWriter wraps an io.Writer with a mutex for concurrent use.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	n, err = s.w.Write(p)
	s.mu.Unlock()
	return
}

// Sync wraps a writer so concurrent Printf calls cannot interleave output.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}
