package zaphandler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/overlog/overlog/core"
)

func newObserved(t *testing.T) (*ZapHandler, *observer.ObservedLogs) {
	t.Helper()
	zcore, logs := observer.New(zapcore.DebugLevel)
	return NewZapHandler(zap.New(zcore)), logs
}

func TestZapHandler_LevelMapping(t *testing.T) {
	h, logs := newObserved(t)

	entries := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.FatalLevel, zapcore.ErrorLevel},
		{core.PanicLevel, zapcore.ErrorLevel},
	}

	for _, tt := range entries {
		entry := &core.Entry{Time: time.Now(), Level: tt.level, Message: "m"}
		if err := h.Handle(entry); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}

	got := logs.All()
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i, tt := range entries {
		if got[i].Level != tt.want {
			t.Errorf("entry %d: level = %v, want %v", i, got[i].Level, tt.want)
		}
	}
}

func TestZapHandler_FieldsAndTag(t *testing.T) {
	h, logs := newObserved(t)

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Tag:     "physics",
		Message: "step",
		Fields: []core.Field{
			core.String("scene", "main"),
			core.Int("bodies", 12),
			core.Bool("paused", false),
		},
	}
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	all := logs.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}

	ctx := all[0].ContextMap()
	if ctx["tag"] != "physics" {
		t.Errorf("tag = %v", ctx["tag"])
	}
	if ctx["scene"] != "main" {
		t.Errorf("scene = %v", ctx["scene"])
	}
	if ctx["bodies"] != int64(12) {
		t.Errorf("bodies = %v", ctx["bodies"])
	}
	if ctx["paused"] != false {
		t.Errorf("paused = %v", ctx["paused"])
	}
}

func TestZapHandler_NilLoggerDefaults(t *testing.T) {
	h := NewZapHandler(nil)
	if h.logger == nil {
		t.Fatal("expected a default zap logger")
	}
}
