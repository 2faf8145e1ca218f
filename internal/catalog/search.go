// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/kiwimap/placebook/pkg/types"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is matched as whitespace-separated terms, all of which must
	// appear in the name, intro, address, or a tag.
	Query string

	// Category keeps only places in this category.
	Category string

	// Tags keeps places carrying every listed tag.
	Tags []string

	// MissingCoords keeps only places the geocoder has not filled in.
	MissingCoords bool

	// Recommend keeps only places with a recommended menu item.
	Recommend bool

	// IncludeClosed also returns temporarily closed places.
	IncludeClosed bool

	// OpenOn keeps places with hours listed for a weekday key ("mon".."sun").
	OpenOn string

	// MaxResults limits result count. Zero uses the catalog default.
	MaxResults int
}

// Result is a cataloged place and the store file it came from.
type Result struct {
	File        string `json:"file" yaml:"file"`
	types.Place `yaml:",inline"`
}

// Search returns places matching opts, ordered by store file name.
func (c *Catalog) Search(ctx context.Context, opts QueryOptions) ([]Result, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT p.file, p.doc FROM places p WHERE 1=1`)

	for _, term := range strings.Fields(opts.Query) {
		pattern := "%" + escapeLike(term) + "%"
		qb.WriteString(` AND (p.name LIKE ? ESCAPE '\' OR p.intro LIKE ? ESCAPE '\'
			OR p.address LIKE ? ESCAPE '\'
			OR EXISTS (SELECT 1 FROM place_tags t WHERE t.file = p.file AND t.tag LIKE ? ESCAPE '\'))`)
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if opts.Category != "" {
		qb.WriteString(` AND p.category = ?`)
		args = append(args, opts.Category)
	}

	for _, tag := range opts.Tags {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM place_tags t WHERE t.file = p.file AND t.tag = ?)`)
		args = append(args, tag)
	}

	if opts.MissingCoords {
		qb.WriteString(` AND p.has_coords = 0`)
	}
	if opts.Recommend {
		qb.WriteString(` AND p.has_recommend = 1`)
	}
	if !opts.IncludeClosed {
		qb.WriteString(` AND p.temp_closed = 0`)
	}

	if opts.OpenOn != "" {
		day := strings.ToLower(opts.OpenOn)
		if !slices.Contains(types.Weekdays, day) {
			return nil, fmt.Errorf("unknown weekday %q (want one of %s)", opts.OpenOn, strings.Join(types.Weekdays, ", "))
		}
		qb.WriteString(` AND EXISTS (SELECT 1 FROM place_hours h WHERE h.file = p.file AND h.day = ?)`)
		args = append(args, day)
	}

	qb.WriteString(` ORDER BY p.file LIMIT ?`)
	args = append(args, maxResults)

	rows, err := c.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var (
			r   Result
			doc string
		)
		if err := rows.Scan(&r.File, &doc); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &r.Place); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", r.File, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Stats summarises the catalog.
type Stats struct {
	Places        int            `json:"places" yaml:"places"`
	Geocoded      int            `json:"geocoded" yaml:"geocoded"`
	MissingCoords int            `json:"missing_coords" yaml:"missing_coords"`
	TempClosed    int            `json:"temp_closed" yaml:"temp_closed"`
	Categories    map[string]int `json:"categories" yaml:"categories"`
}

// Stats counts places overall and per category.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Categories: map[string]int{}}

	err := c.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(sum(has_coords), 0), coalesce(sum(temp_closed), 0) FROM places`,
	).Scan(&st.Places, &st.Geocoded, &st.TempClosed)
	if err != nil {
		return st, fmt.Errorf("counting places: %w", err)
	}
	st.MissingCoords = st.Places - st.Geocoded

	rows, err := c.db.QueryContext(ctx,
		`SELECT category, count(*) FROM places GROUP BY category ORDER BY category`)
	if err != nil {
		return st, fmt.Errorf("counting categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category string
			n        int
		)
		if err := rows.Scan(&category, &n); err != nil {
			return st, fmt.Errorf("scanning row: %w", err)
		}
		st.Categories[category] = n
	}
	return st, rows.Err()
}

// escapeLike escapes LIKE wildcards so terms match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
