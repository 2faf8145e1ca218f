// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocoder

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NeedsGeocode reports whether a place document lacks usable coordinates:
// either lat or lng is absent, null, false, zero, or empty.
func NeedsGeocode(doc []byte) bool {
	return !truthy(gjson.GetBytes(doc, "lat")) || !truthy(gjson.GetBytes(doc, "lng"))
}

// Address returns the trimmed address of a place document.
func Address(doc []byte) string {
	return strings.TrimSpace(gjson.GetBytes(doc, "address").String())
}

// Patch sets lat and lng on a place document, leaving every other field
// and the key order as they were.
func Patch(doc []byte, lat, lng float64) ([]byte, error) {
	out, err := sjson.SetBytes(doc, "lat", lat)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "lng", lng)
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		nonEmpty := false
		r.ForEach(func(_, _ gjson.Result) bool {
			nonEmpty = true
			return false
		})
		return nonEmpty
	default:
		return false
	}
}
