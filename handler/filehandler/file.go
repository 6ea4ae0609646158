package filehandler

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/formatter"
)

// FileHandler writes log entries to a file with buffering and
// optional size-based rotation.
type FileHandler struct {
	mu          sync.Mutex
	filename    string
	file        *os.File
	bufWriter   *bufio.Writer
	formatter   formatter.Formatter
	maxSize     int64
	maxBackups  int
	currentSize int64
	flushEvery  time.Duration
	closed      chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path of the log file (required)
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum file size in bytes before rotation (0 disables rotation)
	MaxSize int64
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int
	// BufferSize is the bufio writer size (default: 32 KiB)
	BufferSize int
	// FlushInterval is how often buffered data is flushed (default: 1s)
	FlushInterval time.Duration
}

// NewFileHandler creates a new file handler, opening (or creating) the
// target file in append mode.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: Filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 32 * 1024
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open %s: %w", cfg.Filename, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("filehandler: stat %s: %w", cfg.Filename, err)
	}

	h := &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, cfg.BufferSize),
		formatter:   cfg.Formatter,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
		flushEvery:  cfg.FlushInterval,
		closed:      make(chan struct{}),
	}

	h.wg.Add(1)
	go h.flushLoop()

	return h, nil
}

// Handle formats and writes an entry, rotating first when the write
// would exceed MaxSize.
func (h *FileHandler) Handle(entry *core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return fmt.Errorf("filehandler: handler closed")
	}

	if h.maxSize > 0 && h.currentSize+int64(len(data)) > h.maxSize {
		if err := h.rotate(); err != nil {
			return err
		}
	}

	n, err := h.bufWriter.Write(data)
	h.currentSize += int64(n)
	return err
}

// rotate renames the current file to filename.1, shifting existing
// backups up and discarding the oldest. Caller must hold mu.
func (h *FileHandler) rotate() error {
	if err := h.bufWriter.Flush(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	// Shift backups: file.2 -> file.3, file.1 -> file.2, ...
	for i := h.maxBackups - 1; i >= 1; i-- {
		src := backupName(h.filename, i)
		dst := backupName(h.filename, i+1)
		if _, err := os.Stat(src); err == nil {
			os.Rename(src, dst)
		}
	}
	if err := os.Rename(h.filename, backupName(h.filename, 1)); err != nil {
		return fmt.Errorf("filehandler: rotate %s: %w", h.filename, err)
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("filehandler: reopen %s: %w", h.filename, err)
	}
	h.file = file
	h.bufWriter = bufio.NewWriterSize(file, h.bufWriter.Size())
	h.currentSize = 0
	return nil
}

func backupName(filename string, n int) string {
	return filepath.Clean(fmt.Sprintf("%s.%d", filename, n))
}

// flushLoop periodically flushes the buffered writer
func (h *FileHandler) flushLoop() {
	defer h.wg.Done()
	ticker := time.NewTicker(h.flushEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.mu.Lock()
			if h.file != nil {
				h.bufWriter.Flush()
			}
			h.mu.Unlock()
		case <-h.closed:
			return
		}
	}
}

// Flush forces buffered data to disk
func (h *FileHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil
	}
	return h.bufWriter.Flush()
}

// Close flushes and closes the file
func (h *FileHandler) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.file == nil {
			return
		}
		err = h.bufWriter.Flush()
		if cerr := h.file.Close(); err == nil {
			err = cerr
		}
		h.file = nil
	})
	return err
}
