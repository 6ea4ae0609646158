package override

import (
	"github.com/overlog/overlog/facade"
	"github.com/overlog/overlog/sink"
)

// Resolve computes the currently winning sink: the stack's topmost
// non-nil sink, or def if the stack contributes nothing. def must not
// be nil; a nil default is a fatal configuration error that belongs at
// facade construction, never here.
func Resolve(s *Stack, def sink.Sink) sink.Sink {
	if def == nil {
		panic("override: resolve requires a non-nil default sink")
	}
	if top := s.TopSink(); top != nil {
		return top
	}
	return def
}

// Publish installs the resolved sink into the facade. A single
// overwrite with last-writer-wins semantics; idempotent, so callers
// invoke it after every stack mutation without checking whether the
// top actually changed.
func Publish(f *facade.Facade, s sink.Sink) {
	f.SetCurrent(s)
}
