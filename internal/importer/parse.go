// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kiwimap/placebook/pkg/types"
)

// Separators used inside spreadsheet cells.
const (
	itemSep    = ";"
	subSep     = "|"
	holidaySep = "|"
)

// ErrNonFiniteRating is returned for a rating that parses to NaN or an
// infinity. Such a value cannot be written as JSON.
var ErrNonFiniteRating = errors.New("rating is not a finite number")

var truthy = map[string]bool{"y": true, "yes": true, "true": true, "1": true}

// ParseBool accepts y, yes, true and 1 in any case. Everything else,
// including the empty string, is false.
func ParseBool(value string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(value))]
}

// ParseList splits value on sep, trims each item and drops empty ones.
// The result is never nil.
func ParseList(value, sep string) []string {
	items := []string{}
	if value == "" {
		return items
	}
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseMenus reads "name|price|recommend;..." cells. Items without a name
// are dropped; missing sub-fields default to empty or false.
func ParseMenus(value string) []types.Menu {
	menus := []types.Menu{}
	for _, item := range ParseList(value, itemSep) {
		parts := strings.Split(item, subSep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		m := types.Menu{Name: parts[0]}
		if len(parts) > 1 {
			m.Price = parts[1]
		}
		if len(parts) > 2 {
			m.IsRecommend = ParseBool(parts[2])
		}
		if m.Name == "" {
			continue
		}
		menus = append(menus, m)
	}
	return menus
}

// ParsePhotos reads ";"-separated URLs. Alt text is left empty.
func ParsePhotos(value string) []types.Photo {
	photos := []types.Photo{}
	for _, url := range ParseList(value, itemSep) {
		photos = append(photos, types.Photo{URL: url, Alt: ""})
	}
	return photos
}

// ParseRating parses a rating cell. An empty cell is 0. A malformed cell
// returns 0 and the parse error so the caller can report it. A value that
// overflows or spells NaN/Inf returns ErrNonFiniteRating.
func ParseRating(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", value, ErrNonFiniteRating)
		}
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", value, ErrNonFiniteRating)
	}
	return f, nil
}
