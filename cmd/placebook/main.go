// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the placebook CLI.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kiwimap/placebook/internal/config"
	"github.com/kiwimap/placebook/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is resolved in PersistentPreRunE before any subcommand runs.
var cfg *types.Config

// configErr records a config file that exists but could not be read.
var configErr error

// rootCmd is the base command for the placebook CLI.
var rootCmd = &cobra.Command{
	Use:   "placebook",
	Short: "Data pipeline for a static place directory",
	Long: `placebook maintains the data behind a static directory of places.

A curated spreadsheet is imported into one JSON document per place, the
documents are aggregated into a single array the site loads at runtime, and
missing coordinates are filled in through the Naver Maps geocoding API.

Each stage is a subcommand: import, index, geocode. The catalog subcommand
mirrors the store into SQLite for searching and export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if err := config.InitLogger(c.Log); err != nil {
			return err
		}
		cfg = c

		if used := viper.ConfigFileUsed(); used != "" {
			zap.L().Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./placebook.yaml or ~/.config/placebook/placebook.yaml)")
	flags.String("places-dir", "", "directory of place documents (default data/places)")
	flags.String("index-path", "", "aggregate file written by index and geocode (default data/places.json)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	mustBind("store.places_dir", flags.Lookup("places-dir"))
	mustBind("store.index_path", flags.Lookup("index-path"))
	mustBind("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	configErr = nil
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("placebook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "placebook"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
