// Package handler defines the Handler interface, the terminal output
// mechanism that sinks delegate to, together with handler-independent
// plumbing: the MultiHandler fanout, atomic Stats counters, and the
// per-level OverflowPolicy used by the async console handler.
//
// Concrete handlers live in subpackages: consolehandler writes to any
// io.Writer synchronously or through a bounded async queue, filehandler
// adds buffering and size-based rotation, and zaphandler forwards
// entries into an existing zap deployment. MemoryHandler lives here
// because nearly every package's tests capture output through it.
package handler
