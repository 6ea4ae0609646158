package handler

import (
	"errors"
	"testing"

	"github.com/overlog/overlog/core"
)

type failingHandler struct {
	err error
}

func (h *failingHandler) Handle(*core.Entry) error { return h.err }
func (h *failingHandler) Close() error             { return h.err }

func TestMultiHandler_FanOut(t *testing.T) {
	m1 := NewMemoryHandler()
	m2 := NewMemoryHandler()
	multi := NewMultiHandler(m1, m2)

	entry := &core.Entry{Level: core.InfoLevel, Message: "fan out"}
	if err := multi.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if m1.Len() != 1 || m2.Len() != 1 {
		t.Errorf("expected 1 entry in each handler, got %d and %d", m1.Len(), m2.Len())
	}
}

func TestMultiHandler_LastError(t *testing.T) {
	wantErr := errors.New("disk full")
	multi := NewMultiHandler(&failingHandler{err: wantErr}, NewMemoryHandler())

	entry := &core.Entry{Level: core.InfoLevel, Message: "x"}
	if err := multi.Handle(entry); !errors.Is(err, wantErr) {
		t.Errorf("Handle() error = %v, want %v", err, wantErr)
	}
}

func TestMemoryHandler_CopiesFields(t *testing.T) {
	m := NewMemoryHandler()

	entry := core.GetEntry()
	entry.Message = "pooled"
	entry.Fields = append(entry.Fields, core.String("k", "v"))
	if err := m.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	core.PutEntry(entry)

	got := m.Entries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Message != "pooled" {
		t.Errorf("Message = %q after entry recycled", got[0].Message)
	}
	if len(got[0].Fields) != 1 || got[0].Fields[0].Str != "v" {
		t.Errorf("Fields = %+v after entry recycled", got[0].Fields)
	}
}

func TestMemoryHandler_Clear(t *testing.T) {
	m := NewMemoryHandler()
	m.Handle(&core.Entry{Message: "one"})
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear", m.Len())
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.DebugLevel)
	s.IncrementDropped(core.DebugLevel)
	s.IncrementDropped(core.ErrorLevel)
	s.IncrementBlocked()
	s.IncrementProcessed()

	if got := s.GetDropped(core.DebugLevel); got != 2 {
		t.Errorf("GetDropped(Debug) = %d", got)
	}
	if got := s.GetTotalDropped(); got != 3 {
		t.Errorf("GetTotalDropped() = %d", got)
	}
	if got := s.GetBlocked(); got != 1 {
		t.Errorf("GetBlocked() = %d", got)
	}
	if got := s.GetProcessed(); got != 1 {
		t.Errorf("GetProcessed() = %d", got)
	}

	s.Reset()
	if s.GetTotalDropped() != 0 || s.GetBlocked() != 0 || s.GetProcessed() != 0 {
		t.Error("Reset() did not zero counters")
	}
}
