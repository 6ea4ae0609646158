package handler

import (
	"github.com/overlog/overlog/core"
)

// Handler is the terminal output mechanism a sink delegates to.
// Implementations must be safe for concurrent Handle calls.
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}
