package handler

import (
	"sync"

	"github.com/overlog/overlog/core"
)

// MemoryHandler stores log entries in memory for testing purposes.
type MemoryHandler struct {
	mu      sync.RWMutex
	entries []core.Entry
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{
		entries: make([]core.Entry, 0),
	}
}

// Handle stores a copy of the entry. Entries are copied because the
// caller may recycle them through the pool after Handle returns.
func (h *MemoryHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entryCopy := *entry
	if len(entry.Fields) > 0 {
		entryCopy.Fields = make([]core.Field, len(entry.Fields))
		copy(entryCopy.Fields, entry.Fields)
	}

	h.entries = append(h.entries, entryCopy)
	return nil
}

// Close does nothing for memory handler
func (h *MemoryHandler) Close() error {
	return nil
}

// Entries returns a copy of all stored entries
func (h *MemoryHandler) Entries() []core.Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]core.Entry, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of stored entries
func (h *MemoryHandler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear removes all stored entries
func (h *MemoryHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
}
