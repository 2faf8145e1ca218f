// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index rebuilds the aggregate places file from the store.
package index

import (
	"fmt"
	"io"

	"github.com/kiwimap/placebook/internal/store"
)

// Result summarises an index build.
type Result struct {
	Count int
	Path  string
}

// Build reads every document in s in file-name order and writes them as one
// JSON array to path, replacing the previous file. Documents are copied
// verbatim. If any document fails to parse, nothing is written.
func Build(s *store.Store, path string, w io.Writer) (Result, error) {
	entries, err := s.LoadAll()
	if err != nil {
		return Result{}, fmt.Errorf("loading places: %w", err)
	}

	if err := store.WriteAggregate(path, entries); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Indexed: %d -> %s\n", len(entries), path)
	return Result{Count: len(entries), Path: path}, nil
}
