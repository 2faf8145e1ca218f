// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiwimap/placebook/internal/catalog"
	"github.com/kiwimap/placebook/internal/store"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search and export places through a SQLite catalog",
	Long: `Catalog mirrors the places directory into a SQLite database for
curators. Run "catalog build" after importing or geocoding, then use search
or export. The places directory remains the source of truth.`,
}

// --- build subcommand ---

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the catalog from the places directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}
		defer c.Close()

		_, err = c.Build(cmd.Context(), store.New(cfg.Store.PlacesDir), cmd.OutOrStdout())
		return err
	},
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search cataloged places by text and filters",
	Long: `Search matches every word of the query against place names, intros,
addresses, and tags. Filters narrow the result further. Temporarily closed
places are hidden unless --include-closed is given.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	c, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer c.Close()

	results, err := c.Search(cmd.Context(), queryOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []catalog.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %-20s  %-10s  %-6s  %s\n", "File", "Name", "Category", "Rating", "Coords")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for _, r := range results {
		coords := "-"
		if r.HasCoordinates() {
			coords = fmt.Sprintf("%.5f,%.5f", *r.Lat, *r.Lng)
		}
		fmt.Fprintf(w, "%-30s  %-20s  %-10s  %-6.1f  %s\n",
			truncate(r.File, 30), truncate(r.Name, 20), truncate(r.Category, 10), r.Rating, coords)
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cataloged places to YAML or JSON",
	Long: `Export writes matching places to catalog-export.yaml or
catalog-export.json next to the catalog database. It accepts the same
filters as search; the result limit does not apply.`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	c, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer c.Close()

	opts := queryOptsFromFlags(cmd, nil)
	format, _ := cmd.Flags().GetString("format")

	var path string
	switch format {
	case "yaml":
		path, err = c.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = c.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported -> %s\n", path)
	return nil
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count cataloged places by coordinates, status, and category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}
		defer c.Close()

		st, err := c.Stats(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Places:         %d\n", st.Places)
		fmt.Fprintf(w, "Geocoded:       %d\n", st.Geocoded)
		fmt.Fprintf(w, "Missing coords: %d\n", st.MissingCoords)
		fmt.Fprintf(w, "Temp closed:    %d\n", st.TempClosed)

		categories := make([]string, 0, len(st.Categories))
		for k := range st.Categories {
			categories = append(categories, k)
		}
		sort.Strings(categories)
		for _, k := range categories {
			name := k
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(w, "  %-12s  %d\n", name, st.Categories[k])
		}
		return nil
	},
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	category, _ := cmd.Flags().GetString("category")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	missing, _ := cmd.Flags().GetBool("missing-coords")
	recommend, _ := cmd.Flags().GetBool("recommend")
	closed, _ := cmd.Flags().GetBool("include-closed")
	openOn, _ := cmd.Flags().GetString("open-on")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:         strings.Join(args, " "),
		Category:      category,
		Tags:          tags,
		MissingCoords: missing,
		Recommend:     recommend,
		IncludeClosed: closed,
		OpenOn:        openOn,
		MaxResults:    limit,
	}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().StringSlice("tag", nil, "filter by tag (repeatable, all must match)")
	cmd.Flags().Bool("missing-coords", false, "only places without coordinates")
	cmd.Flags().Bool("recommend", false, "only places with a recommended menu item")
	cmd.Flags().Bool("include-closed", false, "include temporarily closed places")
	cmd.Flags().String("open-on", "", "only places with hours on a weekday (mon..sun)")
}

func init() {
	addFilterFlags(catalogSearchCmd)
	catalogSearchCmd.Flags().Int("limit", 0, "maximum number of results (default catalog.max_results)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	addFilterFlags(catalogExportCmd)
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.PersistentFlags().String("db", "", "catalog database (default data/catalog.db)")
	mustBind("catalog.path", catalogCmd.PersistentFlags().Lookup("db"))

	catalogCmd.AddCommand(catalogBuildCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}
