// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StoreConfig locates the places store and its aggregate file.
type StoreConfig struct {
	// PlacesDir holds one JSON document per place (e.g. "data/places").
	PlacesDir string `json:"places_dir" yaml:"places_dir" mapstructure:"places_dir"`

	// IndexPath is the aggregate array consumed by the site (e.g. "data/places.json").
	IndexPath string `json:"index_path" yaml:"index_path" mapstructure:"index_path"`
}

// ImportConfig holds settings for the spreadsheet importer.
type ImportConfig struct {
	// Sheet selects an XLSX sheet by name. Empty means the first sheet.
	Sheet string `json:"sheet" yaml:"sheet" mapstructure:"sheet"`
}

// GeocodeConfig holds settings for the geocoding stage.
type GeocodeConfig struct {
	// APIURL is the Naver Maps geocode endpoint.
	APIURL string `json:"api_url" yaml:"api_url" mapstructure:"api_url"`

	// Timeout is the per-request HTTP timeout (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// Delay is the pause after each updated place (default 200ms).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`

	// MaxRetries bounds retries on HTTP 429 (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// RateLimit caps requests per second. Zero disables the limiter.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`
}

// CatalogConfig holds settings for the SQLite catalog.
type CatalogConfig struct {
	// Path is the database file (default "data/catalog.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default search result limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" for human-readable output or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for the placebook pipeline.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
	Import  ImportConfig  `json:"import" yaml:"import" mapstructure:"import"`
	Geocode GeocodeConfig `json:"geocode" yaml:"geocode" mapstructure:"geocode"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
