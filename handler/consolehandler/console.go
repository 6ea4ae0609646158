package consolehandler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/formatter"
	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/selflog"
)

// ConsoleHandler writes log entries to an io.Writer, either
// synchronously under a mutex or through a bounded async queue.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	async           bool
	queue           chan *core.Entry
	wg              sync.WaitGroup
	closeOnce       sync.Once
	closed          chan struct{}
	mu              sync.Mutex
	overflowPolicy  map[core.Level]handler.OverflowPolicy
	blockTimeout    time.Duration
	drainTimeout    time.Duration
	stats           *handler.Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = handler.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		async:          cfg.Async,
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	if h.async {
		h.queue = make(chan *core.Entry, cfg.BufferSize)
		h.wg.Add(1)
		go h.worker()
	}

	return h
}

// Handle processes a log entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.async {
		return h.write(entry)
	}

	select {
	case <-h.closed:
		// Write synchronously once the queue worker is gone
		return h.write(entry)
	default:
	}

	// The caller owns entry and may recycle it through the pool as soon
	// as Handle returns, so the queue gets its own copy.
	queued := copyEntry(entry)

	policy := h.overflowPolicy[entry.Level]
	select {
	case h.queue <- queued:
		return nil
	default:
	}

	switch policy {
	case DropNewestPolicy:
		h.stats.IncrementDropped(entry.Level)
		return nil
	case DropOldestPolicy:
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
		default:
		}
		select {
		case h.queue <- queued:
		default:
			h.stats.IncrementDropped(entry.Level)
		}
		return nil
	default: // Block
		h.stats.IncrementBlocked()
		timer := time.NewTimer(h.blockTimeout)
		defer timer.Stop()
		select {
		case h.queue <- queued:
			return nil
		case <-timer.C:
			h.stats.IncrementDropped(entry.Level)
			return nil
		case <-h.closed:
			return h.write(queued)
		}
	}
}

// Aliases so callers configuring this handler don't need to import the
// parent package for the policy constants.
const (
	DropNewestPolicy = handler.DropNewest
	DropOldestPolicy = handler.DropOldest
	BlockPolicy      = handler.Block
)

// worker drains the async queue
func (h *ConsoleHandler) worker() {
	defer h.wg.Done()
	for {
		select {
		case entry := <-h.queue:
			if err := h.write(entry); err != nil {
				selflog.Printf("[console] write failed: %v", err)
			}
		case <-h.closed:
			// Drain what is left, bounded by drainTimeout
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case entry := <-h.queue:
					if err := h.write(entry); err != nil {
						selflog.Printf("[console] write failed during drain: %v", err)
					}
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// write formats and writes an entry under the handler mutex
func (h *ConsoleHandler) write(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(entry, h.writer)
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			_, err = h.writer.Write(data)
		}
	}
	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// Stats returns the handler's counters
func (h *ConsoleHandler) Stats() *handler.Stats {
	return h.stats
}

// Close stops the async worker (draining the queue) and releases resources
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		if h.async {
			h.wg.Wait()
		}
	})
	return nil
}

// copyEntry clones an entry so it can outlive the caller's pooled copy
func copyEntry(entry *core.Entry) *core.Entry {
	c := *entry
	if len(entry.Fields) > 0 {
		c.Fields = make([]core.Field, len(entry.Fields))
		copy(c.Fields, entry.Fields)
	} else {
		c.Fields = nil
	}
	return &c
}
