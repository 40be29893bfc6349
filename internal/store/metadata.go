// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookbot/pkg/types"
)

// WriteMetadata writes a YAML record for an acquired book to
// {dir}/metadata/{slug}-{id}.yaml and returns the written path.
func (s *Store) WriteMetadata(rec types.AcquiredBook) (string, error) {
	dir := filepath.Join(s.dir, metadataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshaling metadata: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%d.yaml", Slugify(rec.Title), rec.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ReadMetadata loads a previously written acquisition record.
func ReadMetadata(path string) (types.AcquiredBook, error) {
	var rec types.AcquiredBook
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, err
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return rec, nil
}
