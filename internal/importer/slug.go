// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"regexp"
	"strings"
)

// fallbackSlug is used when a name has no sluggable characters.
const fallbackSlug = "place"

var (
	// Anything outside ASCII alphanumerics and precomposed Hangul syllables.
	nonSlugRun = regexp.MustCompile(`[^0-9A-Za-z가-힣]+`)
	hyphenRun  = regexp.MustCompile(`-+`)
)

// Slugify turns a place name into a file-safe identifier. The result only
// contains [0-9A-Za-z], Hangul syllables and single inner hyphens, and is
// never empty.
func Slugify(name string) string {
	s := strings.TrimSpace(name)
	s = nonSlugRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackSlug
	}
	return s
}
