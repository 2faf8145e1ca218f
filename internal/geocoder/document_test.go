// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package geocoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsGeocode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"both set", `{"lat":37.5,"lng":127.1}`, false},
		{"both null", `{"lat":null,"lng":null}`, true},
		{"missing lat", `{"lng":127.1}`, true},
		{"missing both", `{"name":"x"}`, true},
		{"zero lat", `{"lat":0,"lng":127.1}`, true},
		{"zero float", `{"lat":37.5,"lng":0.0}`, true},
		{"false", `{"lat":false,"lng":127.1}`, true},
		{"empty string", `{"lat":"","lng":127.1}`, true},
		{"string coords", `{"lat":"37.5","lng":"127.1"}`, false},
		{"empty array", `{"lat":[],"lng":127.1}`, true},
		{"empty object", `{"lat":{},"lng":127.1}`, true},
		{"non-empty object", `{"lat":{"v":1},"lng":127.1}`, false},
		{"negative", `{"lat":-33.9,"lng":151.2}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsGeocode([]byte(tt.doc)))
		})
	}
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "서울 종로구 1", Address([]byte(`{"address":"  서울 종로구 1 "}`)))
	assert.Equal(t, "", Address([]byte(`{"address":null}`)))
	assert.Equal(t, "", Address([]byte(`{"name":"x"}`)))
	assert.Equal(t, "", Address([]byte(`{"address":"   "}`)))
}

func TestPatchKeepsOrderAndUnknownFields(t *testing.T) {
	doc := []byte(`{"id":"a","lat":null,"custom":{"x":[1,2]},"lng":null,"tags":["t"]}`)
	out, err := Patch(doc, 37.5, 127.1)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a","lat":37.5,"custom":{"x":[1,2]},"lng":127.1,"tags":["t"]}`, string(out))
}

func TestPatchAppendsMissingKeys(t *testing.T) {
	out, err := Patch([]byte(`{"id":"a"}`), 37.5, 127.1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","lat":37.5,"lng":127.1}`, string(out))
	assert.False(t, NeedsGeocode(out))
}
