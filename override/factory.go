package override

import (
	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/selflog"
	"github.com/overlog/overlog/sink"
)

// Factory builds sink instances from descriptors. Construction
// failures never propagate to the caller: they are reported on the
// diagnostic channel and surface as a nil sink, which the resolver
// treats as "no sink available".
type Factory struct {
	registry       *Registry
	defaultHandler handler.Handler
}

// NewFactory creates a factory over the given registry. defaultHandler
// seeds handler-accepting constructors and is the chaining fallback
// when no lower entry contributes a sink.
func NewFactory(r *Registry, defaultHandler handler.Handler) *Factory {
	return &Factory{registry: r, defaultHandler: defaultHandler}
}

// Usable reports whether a descriptor can yield a sink at all.
// Rejections are policy warnings on the diagnostic channel, distinct
// from construction errors.
func (f *Factory) Usable(d Descriptor) bool {
	if d.Instance != nil {
		if !f.registry.SharedAllowed(InstanceTypeName(d.Instance)) {
			selflog.Printf("[factory] instance type %s is not registered as shareable, treating as unusable", InstanceTypeName(d.Instance))
			return false
		}
		return true
	}
	if d.Type == "" {
		return false
	}
	if _, ok := f.registry.Lookup(d.Type); !ok {
		selflog.Printf("[factory] unknown sink type %q, treating as unusable", d.Type)
		return false
	}
	return true
}

// Build constructs (or passes through) the descriptor's sink. prev is
// the nearest stack entry below the new sink with a non-nil sink, or
// nil when there is none. When chaining is requested, the built sink's
// handler is rewired to prev's handler, falling back to the process
// default. Returns nil when no sink is available for any reason.
func (f *Factory) Build(d Descriptor, prev sink.Sink, chainPrevious bool) sink.Sink {
	if !f.Usable(d) {
		return nil
	}

	built := f.construct(d)
	if built == nil {
		return nil
	}

	if chainPrevious {
		if prev != nil {
			built.SetHandler(prev.Handler())
		} else {
			built.SetHandler(f.defaultHandler)
		}
	}
	return built
}

// construct runs the registered constructor with a recover barrier.
// Sink implementations are arbitrary third-party code; a panicking
// constructor must not take down the push that triggered it.
func (f *Factory) construct(d Descriptor) (built sink.Sink) {
	if d.Instance != nil {
		return d.Instance
	}

	ctors, _ := f.registry.Lookup(d.Type)
	if ctors.WithHandler == nil && ctors.New == nil {
		selflog.Printf("[factory] %q: %v", d.Type, ErrUnconstructible)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			selflog.Printf("[factory] constructor for %q panicked: %v", d.Type, r)
			built = nil
		}
	}()

	if ctors.WithHandler != nil {
		return ctors.WithHandler(f.defaultHandler)
	}
	return ctors.New()
}

// DefaultHandler returns the handler used to seed construction
func (f *Factory) DefaultHandler() handler.Handler {
	return f.defaultHandler
}
