package override

import (
	"fmt"

	"github.com/overlog/overlog/sink"
)

// Owner identifies who requested an override. Owners must be
// comparable with ==, like context keys; the stack never inspects them
// beyond equality.
type Owner any

// Entry is one registered override request. A nil Sink means the entry
// reserves its owner's position without currently contributing a sink:
// it is skipped during resolution but still occupies a slot, which
// matters for who counts as "previous" when chaining handlers.
type Entry struct {
	Owner Owner
	Sink  sink.Sink
}

// Stack is the ordered registry of override requests. New entries are
// appended at the tail; the entry closest to the tail with a non-nil
// sink wins resolution. All operations are linear scans, which is the
// right trade at the expected scale of a handful of live overrides.
//
// Stack is not synchronized; the Manager serializes access.
type Stack struct {
	entries []Entry
}

// NewStack creates an empty stack
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of entries
func (s *Stack) Len() int {
	return len(s.entries)
}

// At returns the entry at position i (0 = head, Len()-1 = tail)
func (s *Stack) At(i int) Entry {
	return s.entries[i]
}

// Index returns the position of owner's entry, or -1 if absent
func (s *Stack) Index(owner Owner) int {
	for i := range s.entries {
		if s.entries[i].Owner == owner {
			return i
		}
	}
	return -1
}

// Push appends a new entry for owner at the tail. The caller must
// guarantee owner is not already present; a duplicate push is a
// precondition violation and panics. Manager.Push converts this
// precondition into ErrDuplicateOwner at the lifecycle boundary.
func (s *Stack) Push(owner Owner, sk sink.Sink) {
	if s.Index(owner) >= 0 {
		panic(fmt.Sprintf("override: duplicate push for owner %v", owner))
	}
	s.entries = append(s.entries, Entry{Owner: owner, Sink: sk})
}

// UpdateInPlace replaces the sink of owner's entry without moving it
func (s *Stack) UpdateInPlace(owner Owner, sk sink.Sink) error {
	i := s.Index(owner)
	if i < 0 {
		return fmt.Errorf("update %v: %w", owner, ErrNotFound)
	}
	s.entries[i].Sink = sk
	return nil
}

// Remove deletes owner's entry, preserving the relative order of the rest
func (s *Stack) Remove(owner Owner) error {
	i := s.Index(owner)
	if i < 0 {
		return fmt.Errorf("remove %v: %w", owner, ErrNotFound)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// TopSink returns the sink of the highest entry with a non-nil sink,
// or nil if no entry has one. This is the resolution walk: tail to
// head, skipping reserved (nil-sink) entries.
func (s *Stack) TopSink() sink.Sink {
	return s.sinkBelow(len(s.entries))
}

// SinkBelow returns the nearest non-nil sink strictly below position i,
// used to find the chaining neighbor for the entry at i.
func (s *Stack) SinkBelow(i int) sink.Sink {
	if i > len(s.entries) {
		i = len(s.entries)
	}
	return s.sinkBelow(i)
}

func (s *Stack) sinkBelow(limit int) sink.Sink {
	for i := limit - 1; i >= 0; i-- {
		if s.entries[i].Sink != nil {
			return s.entries[i].Sink
		}
	}
	return nil
}

// Owners returns the owners in stack order, head first. Used by hosts
// that want to inspect or snapshot the current registration state.
func (s *Stack) Owners() []Owner {
	owners := make([]Owner, len(s.entries))
	for i := range s.entries {
		owners[i] = s.entries[i].Owner
	}
	return owners
}
