// ABOUTME: CLI command to get movie recommendations
// ABOUTME: Matches the given title and prints the ranked result
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/models"
)

var (
	recommendLanguage       string
	recommendGenreWeight    float64
	recommendOverviewWeight float64
	recommendLimit          int
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <movie name>",
		Short: "Recommend movies similar to a title",
		Long: `Recommend movies similar to the given title.

The title is matched case-insensitively against the catalog (exact match
first, then substring). Candidates are scored by a weighted combination
of genre and overview similarity.

Examples:
  cinematch recommend "Inception"
  cinematch recommend inception --genre-weight 1.0 --overview-weight 0
  cinematch recommend "3 Idiots" --language hindi --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().StringVar(&recommendLanguage, "language", "", "Restrict candidates to a language (code or name)")
	cmd.Flags().Float64Var(&recommendGenreWeight, "genre-weight", -1, "Weight of genre similarity (default from config)")
	cmd.Flags().Float64Var(&recommendOverviewWeight, "overview-weight", -1, "Weight of overview similarity (default from config)")
	cmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum number of recommendations")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	query := models.SimilarityQuery{
		MovieName:      strings.Join(args, " "),
		Language:       recommendLanguage,
		GenreWeight:    recommendGenreWeight,
		OverviewWeight: recommendOverviewWeight,
		Limit:          recommendLimit,
	}
	// Flags left at their sentinel take the configured defaults.
	if query.GenreWeight < 0 {
		query.GenreWeight = cfg.GenreWeight
	}
	if query.OverviewWeight < 0 {
		query.OverviewWeight = cfg.OverviewWeight
	}
	if query.Limit == 0 {
		query.Limit = cfg.MaxResults
	}

	recommender := core.NewRecommender(index, history)
	result, err := recommender.Recommend(query)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if !quiet {
		searched := result.Searched
		fmt.Fprintf(out, "Because you searched: %s (%d) [%s] rated %.1f\n\n",
			searched.Title, searched.Year, strings.Join(searched.Genres, ", "), searched.Rating)
	}

	if len(result.Recommendations) == 0 {
		fmt.Fprintf(out, "%s\n", result.Message)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tTITLE\tYEAR\tLANG\tRATING\tSIMILARITY\n")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.1f\t%.3f\n",
			rec.Rank,
			truncate(rec.Movie.Title, 40),
			rec.Movie.Year,
			rec.Movie.Language,
			rec.Movie.Rating,
			rec.Combined)
	}
	w.Flush()

	if verbose {
		fmt.Fprintf(out, "\nConsidered %d candidate(s)\n", result.TotalCandidates)
	}

	return nil
}
