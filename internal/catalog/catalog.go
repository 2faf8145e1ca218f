// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog mirrors the places store into a SQLite database so
// curators can search and export listings. The store stays the source of
// truth: Build always recreates the catalog from it.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/kiwimap/placebook/internal/store"
	"github.com/kiwimap/placebook/pkg/types"
)

const defaultMaxResults = 20

// Catalog manages the SQLite catalog database.
type Catalog struct {
	db         *sql.DB
	path       string
	maxResults int
}

// Open opens or creates the catalog database at cfg.Path and ensures the
// schema exists.
func Open(cfg types.CatalogConfig) (*Catalog, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	c := &Catalog{db: db, path: cfg.Path, maxResults: maxResults}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file.
func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS places (
			file TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			address TEXT,
			category TEXT,
			intro TEXT,
			rating REAL,
			lat REAL,
			lng REAL,
			has_coords INTEGER NOT NULL,
			has_recommend INTEGER NOT NULL,
			temp_closed INTEGER NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS place_tags (
			file TEXT NOT NULL REFERENCES places(file) ON DELETE CASCADE,
			tag TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS place_hours (
			file TEXT NOT NULL REFERENCES places(file) ON DELETE CASCADE,
			day TEXT NOT NULL,
			hours TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_places_category ON places(category)`,
		`CREATE INDEX IF NOT EXISTS idx_place_tags_tag ON place_tags(tag)`,
		`CREATE INDEX IF NOT EXISTS idx_place_hours_day ON place_hours(day)`,
	}

	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BuildSummary holds counts from a catalog build.
type BuildSummary struct {
	Cataloged int
	Failed    int
}

// Total returns the number of store documents examined.
func (s BuildSummary) Total() int {
	return s.Cataloged + s.Failed
}

// Build replaces the catalog contents with the places in s. Documents that
// cannot be read as a place are reported to w and counted as failed; the
// rest are committed in a single transaction.
func (c *Catalog) Build(ctx context.Context, s *store.Store, w io.Writer) (BuildSummary, error) {
	var summary BuildSummary

	names, err := s.Names()
	if err != nil {
		return summary, err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{`DELETE FROM place_hours`, `DELETE FROM place_tags`, `DELETE FROM places`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return summary, fmt.Errorf("clearing catalog: %w", err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		doc, err := s.Read(name)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		var p types.Place
		if err := json.Unmarshal(doc, &p); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := insertPlace(ctx, tx, name, &p, doc); err != nil {
			return summary, err
		}
		summary.Cataloged++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing catalog: %w", err)
	}

	zap.L().Debug("catalog built",
		zap.String("path", c.path),
		zap.Int("cataloged", summary.Cataloged),
		zap.Int("failed", summary.Failed),
	)
	fmt.Fprintf(w, "Cataloged: %d, failed: %d -> %s\n", summary.Cataloged, summary.Failed, c.path)
	return summary, nil
}

func insertPlace(ctx context.Context, tx *sql.Tx, file string, p *types.Place, doc []byte) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO places (file, id, name, address, category, intro, rating, lat, lng,
			has_coords, has_recommend, temp_closed, doc)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		file, p.ID, p.Name, p.Address, p.Category, p.Intro, p.Rating, p.Lat, p.Lng,
		p.HasCoordinates(), p.HasRecommendedMenu(), p.TempClosed, string(doc),
	)
	if err != nil {
		return fmt.Errorf("inserting %s: %w", file, err)
	}

	for _, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO place_tags (file, tag) VALUES (?, ?)`, file, tag,
		); err != nil {
			return fmt.Errorf("inserting tag for %s: %w", file, err)
		}
	}

	for _, day := range types.Weekdays {
		hours := p.Hours.Day(day)
		if hours == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO place_hours (file, day, hours) VALUES (?, ?, ?)`, file, day, hours,
		); err != nil {
			return fmt.Errorf("inserting hours for %s: %w", file, err)
		}
	}
	return nil
}
