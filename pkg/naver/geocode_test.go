// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwimap/placebook/internal/httputil"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

var testCreds = Credentials{ClientID: "id-123", ClientSecret: "secret-456"}

func TestGeocode(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      *Result
		expectErr string
	}{
		{
			name:   "first result with swapped axes",
			status: http.StatusOK,
			body:   `{"status":"OK","addresses":[{"roadAddress":"서울 중구 세종대로 110","x":"127.1","y":"37.5"},{"x":"1","y":"2"}]}`,
			want:   &Result{Lat: 37.5, Lng: 127.1, RoadAddress: "서울 중구 세종대로 110", Matched: true},
		},
		{
			name:   "numeric coordinates",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":126.9779692,"y":37.5662952}]}`,
			want:   &Result{Lat: 37.5662952, Lng: 126.9779692, Matched: true},
		},
		{
			name:   "empty address list",
			status: http.StatusOK,
			body:   `{"status":"OK","addresses":[]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "missing addresses key",
			status: http.StatusOK,
			body:   `{"status":"OK"}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "missing coordinate",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":"127.1","y":""}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "null coordinate",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":null,"y":"37.5"}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "unparsable coordinate",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":"east","y":"37.5"}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "NaN latitude",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":"127.1","y":"NaN"}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "infinite longitude",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":"Infinity","y":"37.5"}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:   "negative infinity",
			status: http.StatusOK,
			body:   `{"addresses":[{"x":"127.1","y":"-Inf"}]}`,
			want:   &Result{Matched: false},
		},
		{
			name:      "unauthorized",
			status:    http.StatusUnauthorized,
			body:      `{"error":{"errorCode":"200","message":"Authentication Failed"}}`,
			expectErr: "geocode failed (401)",
		},
		{
			name:      "malformed body",
			status:    http.StatusOK,
			body:      `{"addresses":`,
			expectErr: "parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "서울 중구 세종대로 110", r.URL.Query().Get("query"))
				assert.Equal(t, "id-123", r.Header.Get(HeaderKeyID))
				assert.Equal(t, "secret-456", r.Header.Get(HeaderKey))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := NewClient(testCreds, WithBaseURL(ts.URL), WithHTTPClient(ts.Client()))
			got, err := c.Geocode(context.Background(), "서울 중구 세종대로 110")

			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeocode_EmptyAddress(t *testing.T) {
	c := NewClient(testCreds, WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGeocode_RetriesTooManyRequests(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"addresses":[{"x":"127.1","y":"37.5"}]}`))
	}))
	defer ts.Close()

	c := NewClient(testCreds, WithBaseURL(ts.URL), WithHTTPClient(ts.Client()), WithMaxRetries(2))
	got, err := c.Geocode(context.Background(), "서울")
	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGeocode_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	c := NewClient(testCreds, WithBaseURL(ts.URL), WithTimeout(20*time.Millisecond))
	_, err := c.Geocode(context.Background(), "서울")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "naver: request")
}

func TestGeocode_RateLimitHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"addresses":[]}`))
	}))
	defer ts.Close()

	c := NewClient(testCreds, WithBaseURL(ts.URL), WithHTTPClient(ts.Client()), WithRateLimit(0.5))

	_, err := c.Geocode(context.Background(), "서울")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Geocode(ctx, "서울")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestSnippet(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = '가'
	}
	assert.Len(t, []rune(snippet([]byte(string(long)))), 200)
	assert.Equal(t, "short", snippet([]byte("  short \n")))
}
