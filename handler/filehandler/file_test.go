package filehandler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/overlog/overlog/core"
)

func TestFileHandler_WriteAndFlush(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	h, err := NewFileHandler(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "to disk",
	}
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "to disk") {
		t.Errorf("file content = %q", data)
	}
}

func TestFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Fatal("expected error for missing Filename")
	}
}

func TestFileHandler_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotate.log")

	h, err := NewFileHandler(FileConfig{
		Filename:   path,
		MaxSize:    128,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	// Enough entries to exceed 128 bytes several times over
	for i := 0; i < 20; i++ {
		entry := &core.Entry{
			Time:    time.Now(),
			Level:   core.InfoLevel,
			Message: "a reasonably long message to force rotation",
		}
		if err := h.Handle(entry); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected backup %s.1 to exist: %v", path, err)
	}
	// Never more than MaxBackups backups
	if _, err := os.Stat(path + ".3"); err == nil {
		t.Errorf("backup beyond MaxBackups exists: %s.3", path)
	}
}

func TestFileHandler_HandleAfterClose(t *testing.T) {
	dir := t.TempDir()
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(dir, "x.log")})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	h.Close()

	entry := &core.Entry{Time: time.Now(), Level: core.InfoLevel, Message: "late"}
	if err := h.Handle(entry); err == nil {
		t.Error("expected error writing after Close")
	}
}
