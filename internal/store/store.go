// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps places as a directory of JSON documents, one file per
// place, and writes the aggregate index derived from them.
//
// Documents are handled as raw JSON so that content written by one stage
// (or by hand) passes through the others untouched.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kiwimap/placebook/pkg/types"
)

// Ext is the extension of place documents.
const Ext = ".json"

// ErrMalformed is returned when a place document is not valid JSON.
var ErrMalformed = errors.New("malformed place document")

// Entry is one place document together with its file name.
type Entry struct {
	Name string
	Doc  json.RawMessage
}

// Store is a directory of place documents.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is not created.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of a document name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether the store directory is present.
func (s *Store) Exists() (bool, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking places directory %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("places path %s is not a directory", s.dir)
	}
	return true, nil
}

// Ensure creates the store directory if it is missing.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating places directory %s: %w", s.dir, err)
	}
	return nil
}

// Names lists document file names in sorted order, dot-prefixed ones
// included. In-flight temp files end in .tmp and never match. A missing
// directory yields an empty list.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading places directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Read loads one document and checks that it parses as JSON.
func (s *Store) Read(name string) (json.RawMessage, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: %w", name, ErrMalformed)
	}
	return json.RawMessage(bytes.TrimSpace(data)), nil
}

// Write stores a raw document under name, normalising it to the store's
// pretty-printed layout.
func (s *Store) Write(name string, doc json.RawMessage) error {
	data, err := Format(doc)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", name, err)
	}
	return writeFileAtomic(s.Path(name), data)
}

// Put encodes a place as <id>.json and returns the file name.
func (s *Store) Put(p *types.Place) (string, error) {
	data, err := Encode(p)
	if err != nil {
		return "", fmt.Errorf("encoding place %s: %w", p.ID, err)
	}
	name := p.ID + Ext
	if err := writeFileAtomic(s.Path(name), data); err != nil {
		return "", err
	}
	return name, nil
}

// LoadAll reads every document in sorted order. The first document that is
// not valid JSON aborts the load.
func (s *Store) LoadAll() ([]Entry, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		doc, err := s.Read(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Doc: doc})
	}
	return entries, nil
}

// WriteAggregate writes the documents as one JSON array at path, replacing
// any previous content. Parent directories are created as needed.
func WriteAggregate(path string, entries []Entry) error {
	docs := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		docs[i] = e.Doc
	}

	data, err := Encode(docs)
	if err != nil {
		return fmt.Errorf("encoding aggregate: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return writeFileAtomic(path, data)
}
