// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[0-9A-Za-z가-힣]+(-[0-9A-Za-z가-힣]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kiwi Cafe", "Kiwi-Cafe"},
		{"  키위 카페  ", "키위-카페"},
		{"카페@@@Latte!!", "카페-Latte"},
		{"--a---b--", "a-b"},
		{"스타벅스 (강남점)", "스타벅스-강남점"},
		{"", "place"},
		{"   ", "place"},
		{"!!!", "place"},
		{"カフェ", "place"},
		{"Café", "Caf"},
		{"ㄱㄴ", "place"},
		{"123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyShapeAndIdempotence(t *testing.T) {
	inputs := []string{
		"Kiwi Cafe", "  키위 카페  ", "a__b", "-x-", "🍜 라멘 🍜", "Ünïcödé", "\t\n",
		"O'Brien's Pub & Grill", "서울/강남", "a - - b", "가-힣",
	}
	for _, in := range inputs {
		got := Slugify(in)
		assert.NotEmpty(t, got, in)
		assert.Regexp(t, slugShape, got, in)
		assert.Equal(t, got, Slugify(got), "slug of %q should be stable", in)
	}
}
