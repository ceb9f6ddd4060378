package service

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

//go:embed schema/snapshot.schema.json
var schemaFS embed.FS

const (
	snapshotSchemaFile = "schema/snapshot.schema.json"
	exportFilePrefix   = "env-export-"
	exportFileLayout   = "20060102-150405"
)

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithArchive uploads every export to archive and enables archived imports.
func WithArchive(archive model.SnapshotArchive) SerializerOption {
	return func(s *Serializer) {
		s.archive = archive
	}
}

// WithExportDir overrides the directory exports are written to.
func WithExportDir(dir string) SerializerOption {
	return func(s *Serializer) {
		s.exportDir = dir
	}
}

// WithSerializerClock replaces the clock used for exportedAt and file names.
func WithSerializerClock(now func() time.Time) SerializerOption {
	return func(s *Serializer) {
		s.now = now
	}
}

// Serializer exports the listing to snapshot files and imports them back.
type Serializer struct {
	store     *Store
	files     model.FileStore
	archive   model.SnapshotArchive
	exportDir string
	now       func() time.Time
	logger    *logger.Logger
}

// NewSerializer creates a Serializer.
func NewSerializer(store *Store, files model.FileStore, logger *logger.Logger, opts ...SerializerOption) *Serializer {
	s := &Serializer{
		store:  store,
		files:  files,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export writes the current listing as a snapshot and returns its path.
func (s *Serializer) Export(ctx context.Context) (string, error) {
	vars, err := s.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list variables: %w", err)
	}
	if vars == nil {
		vars = []model.EnvironmentVariable{}
	}

	now := s.now().UTC()
	snapshot := model.Snapshot{
		Version:    model.SnapshotVersion,
		ExportedAt: now,
		Variables:  vars,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := s.exportDir
	if dir == "" {
		dir = s.files.DefaultExportDir()
	}
	name := exportFilePrefix + now.Format(exportFileLayout) + ".json"
	path := filepath.Join(dir, name)

	if err := s.files.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.Upload(ctx, name, bytes.NewReader(data)); err != nil {
			s.logger.Warn("snapshot archive upload failed", "key", name, "error", err)
		}
	}

	s.logger.Info("snapshot exported", "path", path, "variables", len(vars))
	return path, nil
}

// Import applies every entry of the snapshot at path and returns the
// entries that were applied. A malformed document fails the call with
// ErrParse; failing entries are logged and skipped.
func (s *Serializer) Import(ctx context.Context, path string) ([]model.EnvironmentVariable, error) {
	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return s.importData(ctx, path, data)
}

// ImportArchived applies a snapshot fetched from the archive.
func (s *Serializer) ImportArchived(ctx context.Context, key string) ([]model.EnvironmentVariable, error) {
	if s.archive == nil {
		return nil, model.ErrArchiveDisabled
	}

	reader, err := s.archive.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return s.importData(ctx, key, data)
}

// ListArchived returns the keys of archived snapshots.
func (s *Serializer) ListArchived(ctx context.Context) ([]string, error) {
	if s.archive == nil {
		return nil, model.ErrArchiveDisabled
	}
	keys, err := s.archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived snapshots: %w", err)
	}
	return keys, nil
}

type snapshotEntry struct {
	Name   string  `json:"name"`
	Value  string  `json:"value"`
	Type   string  `json:"type"`
	Remark *string `json:"remark"`
}

type snapshotDocument struct {
	Variables []snapshotEntry `json:"variables"`
}

func (s *Serializer) importData(ctx context.Context, source string, data []byte) ([]model.EnvironmentVariable, error) {
	doc, err := decodeSnapshot(source, data)
	if err != nil {
		return nil, err
	}

	applied := make([]model.EnvironmentVariable, 0, len(doc.Variables))
	for i, entry := range doc.Variables {
		scope, err := model.ParseScope(entry.Type)
		if err != nil {
			s.logger.Warn("snapshot entry skipped", "index", i, "name", entry.Name, "error", err)
			continue
		}

		variable, err := s.store.Create(ctx, scope, entry.Name, entry.Value)
		if err != nil {
			s.logger.Warn("snapshot entry skipped", "index", i, "name", entry.Name, "error", err)
			continue
		}
		variable.Remark = entry.Remark
		applied = append(applied, variable)
	}

	s.logger.Info("snapshot imported", "source", source, "applied", len(applied), "total", len(doc.Variables))
	return applied, nil
}

func decodeSnapshot(source string, data []byte) (snapshotDocument, error) {
	if isYAML(source) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return snapshotDocument{}, err
		}
		data = converted
	}

	if err := validateSnapshot(data); err != nil {
		return snapshotDocument{}, err
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return snapshotDocument{}, fmt.Errorf("%w: %w", model.ErrParse, err)
	}
	return doc, nil
}

func validateSnapshot(data []byte) error {
	schemaData, err := schemaFS.ReadFile(snapshotSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrParse, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", model.ErrParse, strings.Join(msgs, "; "))
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrParse, err)
	}
	converted, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrParse, err)
	}
	return converted, nil
}

func isYAML(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
