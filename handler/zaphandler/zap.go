package zaphandler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/overlog/overlog/core"
)

// ZapHandler forwards log entries to a zap.Logger, letting hosts that
// already run zap route overridden output into their existing pipeline.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler backed by the given zap logger.
// Passing nil uses a production logger writing JSON to stderr.
func NewZapHandler(logger *zap.Logger) *ZapHandler {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &ZapHandler{logger: logger}
}

// Handle converts the entry to zap fields and logs it at the mapped level
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(zapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, len(entry.Fields)+1)
	if entry.Tag != "" {
		fields = append(fields, zap.String("tag", entry.Tag))
	}
	for _, f := range entry.Fields {
		fields = append(fields, zapField(f))
	}
	ce.Time = entry.Time
	ce.Write(fields...)
	return nil
}

// Close flushes buffered zap output
func (h *ZapHandler) Close() error {
	// Sync on stderr returns an error on some platforms; callers treat
	// handler Close errors as advisory.
	return h.logger.Sync()
}

// zapLevel maps a core.Level to the zapcore equivalent
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		// Mapped to Error: the override core owns process exit, not zap
		return zapcore.ErrorLevel
	case core.PanicLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// zapField converts a core.Field without going through interface{}
// for the common scalar types
func zapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
