// Package facade holds the process-wide "current sink" slot that the
// override core publishes into and that application code logs through.
//
// The slot is an explicit, owned value: the application constructs a
// Facade around its default handler and hands it to the override
// manager. Current never returns nil; before any override is pushed it
// returns the default pass-through sink, and after the last override is
// removed it returns it again.
//
// A package-level default facade (console handler, text format) exists
// for the same reason the standard library has a default logger:
// convenience functions like facade.Info work without any setup.
package facade
