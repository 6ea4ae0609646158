package override

import (
	"fmt"
	"sync"

	"github.com/overlog/overlog/facade"
	"github.com/overlog/overlog/sink"
)

// Manager ties the stack, factory, and facade together behind a single
// mutex. Every mutation runs resolve and publish before the lock is
// released, so no interleaving of two owners' registrations can leave
// a stale current sink in the facade.
type Manager struct {
	mu      sync.Mutex
	stack   *Stack
	factory *Factory
	facade  *facade.Facade
}

// NewManager creates a manager publishing into f, building sinks
// through reg. Host lifecycles call Push on activation and Remove on
// deactivation; errors come back typed, nothing panics across this
// boundary except the documented stack precondition.
func NewManager(f *facade.Facade, reg *Registry) *Manager {
	return &Manager{
		stack:   NewStack(),
		factory: NewFactory(reg, f.DefaultHandler()),
		facade:  f,
	}
}

// Push registers a new override for owner and republishes. The entry
// is appended even when the descriptor yields no sink, reserving the
// owner's position for a later Update.
func (m *Manager) Push(owner Owner, d Descriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stack.Index(owner) >= 0 {
		return fmt.Errorf("push %v: %w", owner, ErrDuplicateOwner)
	}

	// The new entry lands on top, so its chaining neighbor is the
	// current topmost sink.
	prev := m.stack.TopSink()
	built := m.factory.Build(d, prev, d.ChainPrevious)

	m.stack.Push(owner, built)
	m.publishLocked()
	return nil
}

// Update rebuilds owner's sink in place, keeping its stack position,
// and republishes.
func (m *Manager) Update(owner Owner, d Descriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.stack.Index(owner)
	if i < 0 {
		return fmt.Errorf("update %v: %w", owner, ErrNotFound)
	}

	prev := m.stack.SinkBelow(i)
	built := m.factory.Build(d, prev, d.ChainPrevious)

	if err := m.stack.UpdateInPlace(owner, built); err != nil {
		return err
	}
	m.publishLocked()
	return nil
}

// Remove deletes owner's entry and republishes
func (m *Manager) Remove(owner Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.stack.Remove(owner); err != nil {
		return err
	}
	m.publishLocked()
	return nil
}

// Active returns the sink the manager last published
func (m *Manager) Active() sink.Sink {
	return m.facade.Current()
}

// Len returns the number of registered overrides
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stack.Len()
}

// Owners returns the registered owners in stack order
func (m *Manager) Owners() []Owner {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stack.Owners()
}

// publishLocked recomputes and installs the current sink. Caller must
// hold mu.
func (m *Manager) publishLocked() {
	Publish(m.facade, Resolve(m.stack, m.facade.DefaultSink()))
}
