// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naver geocodes addresses with the Naver Maps (NCP) geocode API.
package naver

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultURL is the NCP geocode endpoint.
const DefaultURL = "https://naveropenapi.apigw.ntruss.com/map-geocode/v2/geocode"

// Header names carrying the API credentials.
const (
	HeaderKeyID = "X-NCP-APIGW-API-KEY-ID"
	HeaderKey   = "X-NCP-APIGW-API-KEY"
)

// Client geocodes a free-text address.
type Client interface {
	// Geocode looks up address and returns the first candidate. A lookup
	// that finds nothing usable returns Matched=false and no error.
	Geocode(ctx context.Context, address string) (*Result, error)
}

// Credentials identify the NCP application.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Result is the first candidate returned for an address.
type Result struct {
	Lat          float64
	Lng          float64
	RoadAddress  string
	JibunAddress string
	Matched      bool
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient replaces the default HTTP client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithMaxRetries sets how many times an HTTP 429 is retried.
func WithMaxRetries(n int) Option {
	return func(c *client) {
		c.maxRetries = n
	}
}

// WithRateLimit caps requests per second. Zero or less removes the cap.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
	maxRetries int
	limiter    *rate.Limiter
}

// NewClient returns a geocoding Client for the given credentials.
func NewClient(creds Credentials, opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    DefaultURL,
		creds:      creds,
		maxRetries: 2,
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
