package facade

import (
	"sync"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/formatter"
	"github.com/overlog/overlog/handler/consolehandler"
)

var (
	defaultFacade *Facade
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize the default facade with a synchronous console handler
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	// Cannot fail: the handler is non-nil by construction
	defaultFacade, _ = New(h)
}

// Default returns the default facade
func Default() *Facade {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFacade
}

// SetDefault sets the default facade
func SetDefault(f *Facade) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFacade = f
}

// Package-level convenience functions using the default facade

// Log logs a tagged message using the default facade
func Log(level core.Level, tag, msg string, fields ...core.Field) {
	Default().Log(level, tag, msg, fields...)
}

// LogError logs an error using the default facade
func LogError(err error, fields ...core.Field) {
	Default().LogError(err, fields...)
}

// Debug logs a debug message using the default facade
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message using the default facade
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message using the default facade
func Warn(msg string, fields ...core.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message using the default facade
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Fatal logs a fatal message using the default facade and exits
func Fatal(msg string, fields ...core.Field) {
	Default().Fatal(msg, fields...)
}

// Panic logs a panic message using the default facade and panics
func Panic(msg string, fields ...core.Field) {
	Default().Panic(msg, fields...)
}

// Debugf logs a formatted debug message using the default facade
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default facade
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default facade
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default facade
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}
