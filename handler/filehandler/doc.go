// Package filehandler writes log entries to a file through a bufio
// writer. A background goroutine flushes the buffer on a fixed
// interval so a quiet logger does not hold data in memory forever.
//
// When MaxSize is set, a write that would exceed it first rotates the
// file: the current file becomes filename.1, existing backups shift up
// by one, and backups beyond MaxBackups are discarded.
package filehandler
