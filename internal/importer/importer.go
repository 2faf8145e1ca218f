// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer turns a spreadsheet of place listings into place
// documents in the store.
//
// Parsing is deliberately permissive: malformed cells degrade to empty or
// zero values so that a hand-edited sheet never blocks a site build.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/kiwimap/placebook/internal/store"
	"github.com/kiwimap/placebook/pkg/types"
)

// ErrSourceNotFound is returned when the spreadsheet path does not exist.
var ErrSourceNotFound = errors.New("source spreadsheet not found")

// Result summarises an import run.
type Result struct {
	Imported int
	Files    []string
}

// Import reads the spreadsheet at path and writes one document per data row
// into s, creating the store directory if needed. Existing documents with
// the same name are overwritten; others are left alone.
//
// Nothing is written when the source is missing or unreadable. A rating
// that cannot be represented in JSON aborts the run at that row.
func Import(path string, s *store.Store, cfg types.ImportConfig, w io.Writer) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return Result{}, fmt.Errorf("checking %s: %w", path, err)
	}

	rows, err := ReadRows(path, ReadOptions{Sheet: cfg.Sheet})
	if err != nil {
		return Result{}, err
	}

	if err := s.Ensure(); err != nil {
		return Result{}, err
	}

	var result Result
	for i, row := range rows {
		idx := i + 1
		place, err := BuildPlace(row, idx)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", idx, err)
		}

		name, err := s.Put(place)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", idx, err)
		}
		fmt.Fprintf(w, "wrote: %s\n", name)
		result.Imported++
		result.Files = append(result.Files, name)
	}

	fmt.Fprintf(w, "Imported: %d\n", result.Imported)
	return result, nil
}

// BuildPlace maps one spreadsheet row to a place. idx is the 1-based data
// row number and becomes the id suffix.
func BuildPlace(row Row, idx int) (*types.Place, error) {
	name := strings.TrimSpace(row.Get("name"))
	id := fmt.Sprintf("%s-%d", Slugify(name), idx)

	rating, err := ParseRating(row.Get("rating"))
	if err != nil {
		if errors.Is(err, ErrNonFiniteRating) {
			return nil, err
		}
		zap.L().Warn("unparsable rating, using 0",
			zap.Int("row", idx),
			zap.String("id", id),
			zap.String("value", row.Get("rating")),
		)
	}

	return &types.Place{
		ID:         id,
		Name:       name,
		Address:    strings.TrimSpace(row.Get("address")),
		Category:   strings.TrimSpace(row.Get("category")),
		Intro:      strings.TrimSpace(row.Get("intro")),
		Rating:     rating,
		Menus:      ParseMenus(row.Get("menus")),
		Hours:      parseHours(row),
		Holiday:    ParseList(row.Get("holiday"), holidaySep),
		TempClosed: ParseBool(row.Get("temp_closed")),
		Phone:      strings.TrimSpace(row.Get("phone")),
		NaverPlace: strings.TrimSpace(row.Get("naver_place")),
		Photos:     ParsePhotos(row.Get("photos")),
		Tags:       ParseList(row.Get("tags"), itemSep),
	}, nil
}

// parseHours copies the weekday columns verbatim.
func parseHours(row Row) types.Hours {
	return types.Hours{
		Mon: row.Get("mon"),
		Tue: row.Get("tue"),
		Wed: row.Get("wed"),
		Thu: row.Get("thu"),
		Fri: row.Get("fri"),
		Sat: row.Get("sat"),
		Sun: row.Get("sun"),
	}
}
