// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/kiwimap/placebook/internal/store"
)

const exportLimit = 100000

// ExportYAML writes matching places to catalog-export.yaml next to the
// database and returns the file path. MaxResults is ignored.
func (c *Catalog) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := c.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := c.exportPath("yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes matching places to catalog-export.json next to the
// database, in the store's JSON layout, and returns the file path.
// MaxResults is ignored.
func (c *Catalog) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := c.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := store.Encode(results)
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := c.exportPath("json")
	return path, os.WriteFile(path, data, 0o644)
}

func (c *Catalog) exportResults(ctx context.Context, opts QueryOptions) ([]Result, error) {
	opts.MaxResults = exportLimit
	results, err := c.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return results, nil
}

func (c *Catalog) exportPath(ext string) string {
	return filepath.Join(filepath.Dir(c.path), "catalog-export."+ext)
}
