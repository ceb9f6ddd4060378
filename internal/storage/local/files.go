// Package local implements filesystem collaborators on the host filesystem.
package local

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/zulezhe/env-manager/internal/model"
)

var (
	_ model.FileProber = (*Prober)(nil)
	_ model.FileStore  = (*FileStore)(nil)
)

// Prober answers existence and metadata questions with os.Stat.
type Prober struct{}

func NewProber() *Prober {
	return &Prober{}
}

func (p *Prober) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (p *Prober) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// FileStore reads and writes snapshot files.
type FileStore struct {
	exportDir string
}

// NewFileStore creates a FileStore. An empty exportDir falls back to
// DefaultExportDir.
func NewFileStore(exportDir string) *FileStore {
	return &FileStore{exportDir: exportDir}
}

func (s *FileStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories.
func (s *FileStore) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) DefaultExportDir() string {
	return ExportDir(s.exportDir, xdg.UserDirs.Desktop)
}

// ExportDir picks the export directory: configured, else desktop, else
// the working directory.
func ExportDir(configured, desktop string) string {
	if configured != "" {
		return configured
	}
	if desktop != "" {
		return desktop
	}
	return "."
}
