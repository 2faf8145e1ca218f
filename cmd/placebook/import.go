// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/kiwimap/placebook/internal/importer"
	"github.com/kiwimap/placebook/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <spreadsheet>",
	Short: "Import places from a CSV or XLSX spreadsheet",
	Long: `Import reads a spreadsheet with a header row (name, address, category,
intro, rating, menus, mon..sun, holiday, temp_closed, phone, naver_place,
photos, tags) and writes one JSON document per data row into the places
directory. Document ids are "<slug>-<row>", so re-importing the same sheet
overwrites the same files. Documents without a matching row are kept.

Files ending in .xlsx are read as workbooks (first sheet unless --sheet is
given); anything else is read as UTF-8 CSV, with or without a BOM.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	s := store.New(cfg.Store.PlacesDir)
	_, err := importer.Import(args[0], s, cfg.Import, cmd.OutOrStdout())
	return err
}

func init() {
	importCmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	mustBind("import.sheet", importCmd.Flags().Lookup("sheet"))

	rootCmd.AddCommand(importCmd)
}
