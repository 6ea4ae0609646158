package facade

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/sink"
)

// ErrNilDefaultHandler is returned by New when no default handler is
// supplied. The facade's fallback sink must exist before anything can
// be published, so this aborts startup instead of surfacing later.
var ErrNilDefaultHandler = errors.New("facade: default handler must not be nil")

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Facade is the process-wide logging slot the override core publishes
// into. It owns the default handler, the default pass-through sink
// built over it, and the current sink. The current sink is never nil:
// it starts as the default sink and publishers may only replace it
// with another non-nil sink.
type Facade struct {
	mu             sync.RWMutex
	current        sink.Sink
	defaultSink    sink.Sink
	defaultHandler handler.Handler
}

// New creates a facade whose fallback is a pass-through sink over the
// given handler.
func New(defaultHandler handler.Handler) (*Facade, error) {
	if defaultHandler == nil {
		return nil, ErrNilDefaultHandler
	}
	def := sink.NewBasic(defaultHandler)
	return &Facade{
		current:        def,
		defaultSink:    def,
		defaultHandler: defaultHandler,
	}, nil
}

// Current returns the active sink. Never nil.
func (f *Facade) Current() sink.Sink {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// SetCurrent installs s as the active sink. A single overwrite, last
// writer wins. Passing nil is a publish invariant violation and panics;
// resolvers fall back to the default sink instead of publishing nil.
func (f *Facade) SetCurrent(s sink.Sink) {
	if s == nil {
		panic("facade: published sink must not be nil")
	}
	f.mu.Lock()
	f.current = s
	f.mu.Unlock()
}

// Reset restores the default sink as current
func (f *Facade) Reset() {
	f.mu.Lock()
	f.current = f.defaultSink
	f.mu.Unlock()
}

// DefaultSink returns the fallback sink of last resort
func (f *Facade) DefaultSink() sink.Sink {
	return f.defaultSink
}

// DefaultHandler returns the process default handler, used to seed
// handler chaining when a new override is constructed.
func (f *Facade) DefaultHandler() handler.Handler {
	return f.defaultHandler
}

// Log routes a tagged message through the current sink
func (f *Facade) Log(level core.Level, tag, msg string, fields ...core.Field) {
	s := f.Current()

	entry := core.GetEntry()
	entry.Level = level
	entry.Tag = tag
	entry.Message = msg
	entry.Fields = append(entry.Fields, fields...)

	// Output failures are the handler's to report (selflog); the call
	// site never sees them.
	_ = s.Log(entry)
	core.PutEntry(entry)
}

// LogError routes an error through the current sink
func (f *Facade) LogError(err error, fields ...core.Field) {
	f.Current().LogError(err, fields...)
}

// Debug logs a debug message
func (f *Facade) Debug(msg string, fields ...core.Field) {
	f.Log(core.DebugLevel, "", msg, fields...)
}

// Info logs an info message
func (f *Facade) Info(msg string, fields ...core.Field) {
	f.Log(core.InfoLevel, "", msg, fields...)
}

// Warn logs a warning message
func (f *Facade) Warn(msg string, fields ...core.Field) {
	f.Log(core.WarnLevel, "", msg, fields...)
}

// Error logs an error message
func (f *Facade) Error(msg string, fields ...core.Field) {
	f.Log(core.ErrorLevel, "", msg, fields...)
}

// Fatal logs a fatal message and exits the process
func (f *Facade) Fatal(msg string, fields ...core.Field) {
	f.Log(core.FatalLevel, "", msg, fields...)
	osExit(1)
}

// Panic logs a panic message and panics
func (f *Facade) Panic(msg string, fields ...core.Field) {
	f.Log(core.PanicLevel, "", msg, fields...)
	panic(msg)
}

// Debugf logs a formatted debug message
func (f *Facade) Debugf(format string, args ...interface{}) {
	f.Log(core.DebugLevel, "", fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message
func (f *Facade) Infof(format string, args ...interface{}) {
	f.Log(core.InfoLevel, "", fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message
func (f *Facade) Warnf(format string, args ...interface{}) {
	f.Log(core.WarnLevel, "", fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message
func (f *Facade) Errorf(format string, args ...interface{}) {
	f.Log(core.ErrorLevel, "", fmt.Sprintf(format, args...))
}
