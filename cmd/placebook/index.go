// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/kiwimap/placebook/internal/index"
	"github.com/kiwimap/placebook/internal/store"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the aggregate places file",
	Long: `Index reads every document in the places directory in file-name order
and writes them, unchanged, as one JSON array to the index path. A missing
places directory produces an empty array; an unparseable document aborts
the run and leaves the previous aggregate in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := index.Build(store.New(cfg.Store.PlacesDir), cfg.Store.IndexPath, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
