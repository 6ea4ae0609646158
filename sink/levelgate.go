package sink

import (
	"sync/atomic"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
)

// LevelGate suppresses entries below a minimum severity. A disabled
// gate passes nothing at all; an enabled gate passes entries at or
// above the threshold, and always passes LogError calls regardless of
// the threshold.
type LevelGate struct {
	inner   Sink
	enabled atomic.Bool
	min     atomic.Int32
}

// NewLevelGate wraps inner with a severity gate starting at min
func NewLevelGate(inner Sink, min core.Level) *LevelGate {
	g := &LevelGate{inner: inner}
	g.enabled.Store(true)
	g.min.Store(int32(min))
	return g
}

// Allows reports whether entries at the given level pass the gate
func (g *LevelGate) Allows(level core.Level) bool {
	return g.enabled.Load() && level >= core.Level(g.min.Load())
}

// SetEnabled turns the gate on or off. A disabled gate drops everything.
func (g *LevelGate) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

// SetMin changes the severity threshold at runtime
func (g *LevelGate) SetMin(min core.Level) {
	g.min.Store(int32(min))
}

// Min returns the current severity threshold
func (g *LevelGate) Min() core.Level {
	return core.Level(g.min.Load())
}

// Log forwards the entry when it passes the gate
func (g *LevelGate) Log(entry *core.Entry) error {
	if !g.Allows(entry.Level) {
		return nil
	}
	return g.inner.Log(entry)
}

// LogError always forwards while the gate is enabled; errors are the
// most severe class and ignore the threshold.
func (g *LevelGate) LogError(err error, fields ...core.Field) error {
	if !g.enabled.Load() {
		return nil
	}
	return g.inner.LogError(err, fields...)
}

// Handler returns the inner sink's handler
func (g *LevelGate) Handler() handler.Handler {
	return g.inner.Handler()
}

// SetHandler rewires the inner sink's handler
func (g *LevelGate) SetHandler(h handler.Handler) {
	g.inner.SetHandler(h)
}
