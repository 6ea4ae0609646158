package sink

import (
	"sync/atomic"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
)

// PromptFunc is the side channel a Prompt sink surfaces messages to,
// for example a user-facing dialog or an alerting hook.
type PromptFunc func(entry *core.Entry)

// Prompt surfaces every nth entry to a side channel before forwarding
// it. All entries are always forwarded to the inner sink; the side
// channel is additional, never a replacement.
type Prompt struct {
	inner   Sink
	n       uint64
	counter atomic.Uint64
	fn      PromptFunc
}

// NewPrompt wraps inner so that every nth Log call (the nth, 2nth, ...)
// also invokes fn. n values below 1 are treated as 1, which surfaces
// every entry.
func NewPrompt(inner Sink, n int, fn PromptFunc) *Prompt {
	if n < 1 {
		n = 1
	}
	return &Prompt{inner: inner, n: uint64(n), fn: fn}
}

// Log counts the call, surfaces it on every nth call, and forwards
func (p *Prompt) Log(entry *core.Entry) error {
	if c := p.counter.Add(1); c%p.n == 0 && p.fn != nil {
		p.fn(entry)
	}
	return p.inner.Log(entry)
}

// LogError forwards without counting; the sampler meters log volume,
// and errors bypass it.
func (p *Prompt) LogError(err error, fields ...core.Field) error {
	return p.inner.LogError(err, fields...)
}

// Handler returns the inner sink's handler
func (p *Prompt) Handler() handler.Handler {
	return p.inner.Handler()
}

// SetHandler rewires the inner sink's handler
func (p *Prompt) SetHandler(h handler.Handler) {
	p.inner.SetHandler(h)
}
