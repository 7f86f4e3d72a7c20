// ABOUTME: CLI command building the local catalog from TMDb
// ABOUTME: Pages through popular movies and writes the catalog JSON file
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/tmdb"
)

var (
	fetchPages int
	fetchOut   string
)

// NewFetchCmd creates the fetch command
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Build the local catalog from TMDb",
		Long: `Fetch popular movies from TMDb and write them to the catalog file.

Requires TMDB_API_KEY in the environment or a .env file.

Examples:
  cinematch fetch
  cinematch fetch --pages 20 --out ./catalog.json`,
		RunE: runFetch,
	}

	cmd.Flags().IntVar(&fetchPages, "pages", 0, "Number of discover pages to fetch (default from config)")
	cmd.Flags().StringVar(&fetchOut, "out", "", "Catalog file to write (default from config)")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.TMDbKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not set")
	}

	pages := fetchPages
	if pages <= 0 {
		pages = cfg.TMDbPages
	}
	out := fetchOut
	if out == "" {
		out = cfg.CatalogPath
	}

	client := tmdb.NewClient(cfg.TMDbKey,
		tmdb.WithBaseURL(cfg.TMDbBaseURL),
		tmdb.WithRetries(cfg.MaxRetries, cfg.RetryDelay))

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Fetching %d page(s) from TMDb...\n", pages)
	}

	movies, err := client.FetchCatalog(pages)
	if err != nil {
		return fmt.Errorf("fetching catalog: %w", err)
	}

	if err := catalog.Save(out, movies); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d movie(s) to %s\n", len(movies), out)
	}
	return nil
}
