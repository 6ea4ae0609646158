// Package override implements the logging override stack: an ordered
// registry of sink override requests together with the resolution rule
// that decides which single sink the process facade should route log
// calls to.
//
// Each request belongs to an owner, an opaque comparable handle with at
// most one live entry at a time. New requests push onto the tail of the
// stack; the topmost entry with a usable sink wins. Entries whose
// descriptor could not produce a sink stay on the stack with a nil
// sink, reserving their position and their neighbors' chaining
// relationships, and resolution skips over them. When nothing on the
// stack contributes a sink, the facade's default sink wins; the
// published sink is therefore never nil.
//
// The Manager is the entry point for host lifecycles: Push on
// activation, Remove on deactivation, Update when an owner's
// configuration changes. Every mutation and its republish run under
// one mutex, as a single critical section.
//
// Sink construction goes through a Registry of named constructors
// rather than reflection: configuration persists a canonical type
// name, and the registry maps it back to a constructor. Pre-built
// sink instances are accepted only for types registered as shareable;
// anything else is reported on the selflog diagnostic channel and
// treated as "no sink available" rather than an error.
package override
