package model

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// SnapshotVersion is the only snapshot format version written and read.
const SnapshotVersion = "1.0"

// Snapshot is the export/import document.
type Snapshot struct {
	Version    string                `json:"version"`
	ExportedAt time.Time             `json:"exportedAt"`
	Variables  []EnvironmentVariable `json:"variables"`
}

// FileProber answers filesystem questions for the validator.
type FileProber interface {
	Exists(path string) bool
	Stat(path string) (fs.FileInfo, error)
}

// FileStore reads and writes snapshot files.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	DefaultExportDir() string
}

// SnapshotArchive keeps copies of exported snapshots in object storage.
type SnapshotArchive interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
}
