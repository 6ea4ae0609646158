package override

import "errors"

var (
	// ErrNotFound is returned by update and remove operations that
	// reference an owner with no entry on the stack. Always a caller
	// bug, but signaled explicitly instead of being swallowed.
	ErrNotFound = errors.New("override: owner not found on stack")

	// ErrDuplicateOwner is returned by Manager.Push when the owner
	// already holds an entry. An owner has at most one entry at a time.
	ErrDuplicateOwner = errors.New("override: owner already on stack")

	// ErrUnconstructible means a descriptor named a registered type
	// that provides no usable constructor. It is reported on the
	// diagnostic channel; Build returns nil and the resolver falls
	// through to the next entry.
	ErrUnconstructible = errors.New("override: sink type has no usable constructor")
)
