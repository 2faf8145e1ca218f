// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kiwimap/placebook/internal/geocoder"
	"github.com/kiwimap/placebook/internal/secrets"
	"github.com/kiwimap/placebook/internal/store"
	"github.com/kiwimap/placebook/pkg/naver"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Fill in missing coordinates with the Naver Maps geocoder",
	Long: `Geocode looks up every place whose lat or lng is missing or zero, writes
the first match back into the place document, and rebuilds the aggregate.
Places without an address, failed lookups, and addresses with no match are
reported and skipped. Running it again only retries what is still missing.

Credentials come from NAVER_MAPS_CLIENT_ID and NAVER_MAPS_CLIENT_SECRET, or
from .secrets/naver-maps-client-id and .secrets/naver-maps-client-secret.
An unset environment variable is not an error when the matching .secrets
file provides the value; the run fails only when neither source has it.`,
	Args: cobra.NoArgs,
	RunE: runGeocode,
}

func runGeocode(cmd *cobra.Command, args []string) error {
	creds, err := naverCredentials()
	if err != nil {
		return err
	}

	client := naver.NewClient(creds,
		naver.WithBaseURL(cfg.Geocode.APIURL),
		naver.WithTimeout(cfg.Geocode.Timeout),
		naver.WithMaxRetries(cfg.Geocode.MaxRetries),
		naver.WithRateLimit(cfg.Geocode.RateLimit),
	)

	summary, err := geocoder.Run(cmd.Context(), store.New(cfg.Store.PlacesDir), client, geocoder.Options{
		Delay:     cfg.Geocode.Delay,
		IndexPath: cfg.Store.IndexPath,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	zap.L().Info("geocode finished",
		zap.Int("places", summary.Total()),
		zap.Int("updated", summary.Updated),
		zap.Int("complete", summary.Complete),
		zap.Int("no_address", summary.NoAddress),
		zap.Int("no_result", summary.NoResult),
		zap.Int("failed", summary.Failed),
	)
	return nil
}

// naverCredentials resolves both API keys before any store file is touched.
func naverCredentials() (naver.Credentials, error) {
	loaded, err := secrets.Load(secrets.DefaultDir)
	if err != nil {
		return naver.Credentials{}, err
	}
	if len(loaded) > 0 {
		keys := make([]string, 0, len(loaded))
		for k := range loaded {
			keys = append(keys, k)
		}
		zap.L().Debug("loaded secrets", zap.Strings("keys", keys))
	}

	id, err := secrets.Resolve(secrets.NaverClientID, loaded)
	if err != nil {
		return naver.Credentials{}, err
	}
	secret, err := secrets.Resolve(secrets.NaverClientSecret, loaded)
	if err != nil {
		return naver.Credentials{}, err
	}
	return naver.Credentials{ClientID: id, ClientSecret: secret}, nil
}

func init() {
	geocodeCmd.Flags().Duration("delay", 0, "pause after each updated place (default 200ms)")
	geocodeCmd.Flags().Float64("rate-limit", 0, "maximum requests per second (0 for no limit)")
	mustBind("geocode.delay", geocodeCmd.Flags().Lookup("delay"))
	mustBind("geocode.rate_limit", geocodeCmd.Flags().Lookup("rate-limit"))

	rootCmd.AddCommand(geocodeCmd)
}
