// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naver

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/kiwimap/placebook/internal/httputil"
)

// geocodeResponse is the JSON body of the geocode endpoint. Coordinates
// arrive as strings: x is longitude, y is latitude.
type geocodeResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"errorMessage"`
	Addresses    []geocodeAddress `json:"addresses"`
}

type geocodeAddress struct {
	RoadAddress  string `json:"roadAddress"`
	JibunAddress string `json:"jibunAddress"`
	X            coord  `json:"x"`
	Y            coord  `json:"y"`
}

// coord accepts a coordinate given either as a JSON string or a number.
type coord string

func (c *coord) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = coord(s)
		return nil
	}
	if string(data) == "null" {
		*c = ""
		return nil
	}
	*c = coord(data)
	return nil
}

// Geocode implements Client.
func (c *client) Geocode(ctx context.Context, address string) (*Result, error) {
	if strings.TrimSpace(address) == "" {
		return nil, eris.New("naver: empty address")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "naver: rate limit")
	}

	reqURL := c.baseURL + "?" + url.Values{"query": {address}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "naver: build request")
	}
	req.Header.Set(HeaderKeyID, c.creds.ClientID)
	req.Header.Set(HeaderKey, c.creds.ClientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return nil, eris.Wrap(err, "naver: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "naver: read body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("naver: geocode failed (%d): %s", resp.StatusCode, snippet(body))
	}

	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, eris.Wrap(err, "naver: parse response")
	}

	if len(payload.Addresses) == 0 {
		return &Result{Matched: false}, nil
	}

	first := payload.Addresses[0]
	lat, latErr := parseCoord(first.Y)
	lng, lngErr := parseCoord(first.X)
	if latErr != nil || lngErr != nil {
		return &Result{Matched: false}, nil
	}

	return &Result{
		Lat:          lat,
		Lng:          lng,
		RoadAddress:  first.RoadAddress,
		JibunAddress: first.JibunAddress,
		Matched:      true,
	}, nil
}

func parseCoord(c coord) (float64, error) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, eris.New("naver: missing coordinate")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, eris.Errorf("naver: non-finite coordinate %q", s)
	}
	return f, nil
}

// snippet trims a response body for error messages.
func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if r := []rune(s); len(r) > limit {
		return string(r[:limit])
	}
	return s
}
