package override

import (
	"fmt"
	"strings"
	"sync"

	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/sink"
)

// Descriptor identifies which sink an owner wants active. Either Type
// names a registered sink type to construct, or Instance supplies a
// pre-built sink (a stored, already-configured object). When both are
// set, Instance wins. ChainPrevious asks the factory to wire the new
// sink onto the handler of the nearest active sink below it, so output
// flows through the neighbor's terminal handler instead of the process
// default.
type Descriptor struct {
	Type          string
	Instance      sink.Sink
	ChainPrevious bool
}

// Constructors are the supported construction paths for a registered
// sink type. WithHandler is preferred; New is the fallback for types
// that wire their own output. A registration may supply either or both.
type Constructors struct {
	WithHandler func(h handler.Handler) sink.Sink
	New         func() sink.Sink
}

// Registry maps canonical sink type names to constructors, and records
// which concrete types may be handed over as pre-built instances. Go
// cannot instantiate a type from its name, so the registry is the
// explicit stand-in: configuration persists the canonical name, the
// registry turns it back into a value.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]Constructors
	shared map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		types:  make(map[string]Constructors),
		shared: make(map[string]bool),
	}
}

// Register adds a constructible sink type under its canonical name
func (r *Registry) Register(name string, c Constructors) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[CanonicalName(name)] = c
}

// RegisterShared marks a concrete type as acceptable for the pre-built
// instance descriptor path. Instances of unregistered types are
// rejected as unusable (a policy warning, not an error).
func (r *Registry) RegisterShared(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shared[CanonicalName(name)] = true
}

// Lookup returns the constructors registered under name
func (r *Registry) Lookup(name string) (Constructors, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.types[CanonicalName(name)]
	return c, ok
}

// SharedAllowed reports whether instances of the named type may be
// used as pre-built sinks
func (r *Registry) SharedAllowed(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shared[CanonicalName(name)]
}

// InstanceTypeName returns the canonical type name of a sink instance
func InstanceTypeName(s sink.Sink) string {
	return CanonicalName(fmt.Sprintf("%T", s))
}

// CanonicalName strips pointer markers and whitespace from a type
// identifier, producing the minimal stable form used for persistence:
// "*sink.Blacklist" and "sink.Blacklist" name the same registration.
func CanonicalName(name string) string {
	name = strings.TrimSpace(name)
	for strings.HasPrefix(name, "*") || strings.HasPrefix(name, "&") {
		name = name[1:]
	}
	return name
}

// BuiltinRegistry returns a registry preloaded with the sink package's
// concrete types: Basic is constructible, and every decorator type is
// accepted as a pre-built instance (decorators carry configuration, so
// the config layer builds them and hands them over).
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("sink.Basic", Constructors{
		WithHandler: func(h handler.Handler) sink.Sink { return sink.NewBasic(h) },
		New:         func() sink.Sink { return sink.NewBasic(nil) },
	})
	r.RegisterShared("sink.Basic")
	r.RegisterShared("sink.LevelGate")
	r.RegisterShared("sink.Blacklist")
	r.RegisterShared("sink.Prompt")
	return r
}
