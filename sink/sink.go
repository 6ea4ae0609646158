package sink

import (
	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
)

// Sink is a logging destination/policy object. It accepts log entries
// and errors, and delegates actual output to a lower-level Handler.
// SetHandler exists so the override core can rewire a freshly built
// sink onto the handler of the sink it is stacked above.
type Sink interface {
	// Log processes a single entry
	Log(entry *core.Entry) error

	// LogError reports an error condition. Unlike Log it is never
	// subject to severity filtering.
	LogError(err error, fields ...core.Field) error

	// Handler returns the terminal handler this sink writes to
	Handler() handler.Handler

	// SetHandler replaces the terminal handler
	SetHandler(h handler.Handler)
}

// Basic is the pass-through sink: every entry goes straight to the handler.
type Basic struct {
	h handler.Handler
}

// NewBasic creates a pass-through sink over the given handler
func NewBasic(h handler.Handler) *Basic {
	return &Basic{h: h}
}

// Log forwards the entry to the handler
func (s *Basic) Log(entry *core.Entry) error {
	if s.h == nil {
		return nil
	}
	return s.h.Handle(entry)
}

// LogError logs err at error level with an error field
func (s *Basic) LogError(err error, fields ...core.Field) error {
	if s.h == nil {
		return nil
	}
	entry := core.GetEntry()
	entry.Level = core.ErrorLevel
	if err != nil {
		entry.Message = err.Error()
	}
	entry.Fields = append(entry.Fields, core.Err(err))
	entry.Fields = append(entry.Fields, fields...)

	herr := s.h.Handle(entry)
	core.PutEntry(entry)
	return herr
}

// Handler returns the terminal handler
func (s *Basic) Handler() handler.Handler {
	return s.h
}

// SetHandler replaces the terminal handler
func (s *Basic) SetHandler(h handler.Handler) {
	s.h = h
}
