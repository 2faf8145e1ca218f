// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwimap/placebook/internal/importer"
	"github.com/kiwimap/placebook/internal/store"
	"github.com/kiwimap/placebook/pkg/types"
)

func TestBuildAfterImport(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "places.csv")
	csv := "name,address\nZeta Bar,서울\n알파 식당,부산\nMid,대구\n\nLast,인천\n"
	require.NoError(t, os.WriteFile(src, []byte(csv), 0o644))

	s := store.New(filepath.Join(tmp, "places"))
	imported, err := importer.Import(src, s, types.ImportConfig{}, &bytes.Buffer{})
	require.NoError(t, err)

	out := filepath.Join(tmp, "places.json")
	var buf bytes.Buffer
	result, err := Build(s, out, &buf)
	require.NoError(t, err)
	assert.Equal(t, imported.Imported, result.Count)
	assert.Contains(t, buf.String(), "Indexed: 4")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var places []types.Place
	require.NoError(t, json.Unmarshal(data, &places))
	require.Len(t, places, 4)

	names, err := s.Names()
	require.NoError(t, err)
	for i, p := range places {
		assert.Equal(t, names[i], p.ID+".json", "aggregate follows sorted file order")
	}
}

func TestBuildIncludesForeignDocumentsVerbatim(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"custom":true,"lat":0}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`[1,2]`), 0o644))

	out := filepath.Join(t.TempDir(), "places.json")
	_, err := Build(store.New(dir), out, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"custom":true,"lat":0},[1,2]]`, string(data))
}

func TestBuildMalformedLeavesPreviousAggregate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"id":"a"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"id":`), 0o644))

	out := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	_, err := Build(store.New(dir), out, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrMalformed)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestBuildMissingStoreWritesEmptyArray(t *testing.T) {
	out := filepath.Join(t.TempDir(), "places.json")
	result, err := Build(store.New(filepath.Join(t.TempDir(), "none")), out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
