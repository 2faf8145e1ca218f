// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwimap/placebook/pkg/types"
)

func TestParseBool(t *testing.T) {
	for _, v := range []string{"Y", "y", "yes", "YES", "Yes", "TRUE", "true", "1", " y "} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"", "n", "no", "maybe", "false", "0", "2", "yess"} {
		assert.False(t, ParseBool(v), v)
	}
	assert.False(t, ParseBool(Row{}.Get("temp_closed")), "missing column")
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		sep   string
		want  []string
	}{
		{"empty", "", ";", []string{}},
		{"trims and drops empties", " a ; ;b;; c ", ";", []string{"a", "b", "c"}},
		{"pipe separator", "월요일|화요일", "|", []string{"월요일", "화요일"}},
		{"only separators", ";;;", ";", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.value, tt.sep))
		})
	}
}

func TestParseMenus(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "recommend flag and missing fields",
			value: "Latte|4500|Y;Tea||",
			want:  `[{"name":"Latte","price":"4500","is_recommend":true},{"name":"Tea","price":"","is_recommend":false}]`,
		},
		{
			name:  "nameless item dropped",
			value: "|500|Y",
			want:  `[]`,
		},
		{
			name:  "name only",
			value: " 아메리카노 ",
			want:  `[{"name":"아메리카노","price":"","is_recommend":false}]`,
		},
		{
			name:  "price with currency text",
			value: "비빔밥| 9,000원 |yes",
			want:  `[{"name":"비빔밥","price":"9,000원","is_recommend":true}]`,
		},
		{
			name:  "empty",
			value: "",
			want:  `[]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(ParseMenus(tt.value))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestParsePhotos(t *testing.T) {
	got := ParsePhotos("https://a/1.jpg; https://a/2.jpg ;")
	assert.Equal(t, []types.Photo{
		{URL: "https://a/1.jpg", Alt: ""},
		{URL: "https://a/2.jpg", Alt: ""},
	}, got)
	assert.Equal(t, []types.Photo{}, ParsePhotos(""))
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		value     string
		want      float64
		wantErr   bool
		nonFinite bool
	}{
		{value: "4.5", want: 4.5},
		{value: " 3 ", want: 3},
		{value: "", want: 0},
		{value: "abc", want: 0, wantErr: true},
		{value: "4,5", want: 0, wantErr: true},
		{value: "1e999", wantErr: true, nonFinite: true},
		{value: "NaN", wantErr: true, nonFinite: true},
		{value: "inf", wantErr: true, nonFinite: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseRating(tt.value)
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.nonFinite, errors.Is(err, ErrNonFiniteRating))
		})
	}
}
