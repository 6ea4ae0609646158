// Package consolehandler writes log entries to an io.Writer, by default
// os.Stdout.
//
// In synchronous mode every Handle call formats and writes under a
// mutex. In async mode entries are copied onto a bounded queue drained
// by a single worker goroutine; when the queue is full the configured
// per-level OverflowPolicy decides whether to drop the newest entry,
// evict the oldest, or block the caller up to BlockTimeout. Drops and
// blocks are counted in the handler's Stats. Close stops the worker and
// drains remaining entries, bounded by DrainTimeout.
package consolehandler
