// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves placebook settings from defaults, an optional
// YAML file, PLACEBOOK_* environment variables, and bound CLI flags, and
// sets up the global zap logger.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kiwimap/placebook/pkg/naver"
	"github.com/kiwimap/placebook/pkg/types"
)

// EnvPrefix prefixes environment overrides, e.g. PLACEBOOK_STORE_PLACES_DIR.
const EnvPrefix = "PLACEBOOK"

// SetDefaults registers every known key on v. Keys must be registered for
// environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("store.places_dir", "data/places")
	v.SetDefault("store.index_path", "data/places.json")
	v.SetDefault("import.sheet", "")
	v.SetDefault("geocode.api_url", naver.DefaultURL)
	v.SetDefault("geocode.timeout", 10*time.Second)
	v.SetDefault("geocode.delay", 200*time.Millisecond)
	v.SetDefault("geocode.max_retries", 2)
	v.SetDefault("geocode.rate_limit", 0.0)
	v.SetDefault("catalog.path", "data/catalog.db")
	v.SetDefault("catalog.max_results", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// BindEnv enables PLACEBOOK_* overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load registers defaults and environment bindings on v, then decodes it.
// Reading a config file is left to the caller.
func Load(v *viper.Viper) (*types.Config, error) {
	SetDefaults(v)
	BindEnv(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no stage can run with.
func Validate(cfg *types.Config) error {
	var problems []string
	if strings.TrimSpace(cfg.Store.PlacesDir) == "" {
		problems = append(problems, "store.places_dir is empty")
	}
	if strings.TrimSpace(cfg.Store.IndexPath) == "" {
		problems = append(problems, "store.index_path is empty")
	}
	if cfg.Geocode.Delay < 0 {
		problems = append(problems, "geocode.delay is negative")
	}
	if cfg.Geocode.Timeout < 0 {
		problems = append(problems, "geocode.timeout is negative")
	}
	if cfg.Geocode.MaxRetries < 0 {
		problems = append(problems, "geocode.max_retries is negative")
	}
	if cfg.Catalog.MaxResults < 1 {
		problems = append(problems, "catalog.max_results must be at least 1")
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, "log.format must be console or json")
	}
	if len(problems) > 0 {
		return eris.Errorf("config: invalid: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg types.LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
