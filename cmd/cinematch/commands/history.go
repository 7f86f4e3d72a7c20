// ABOUTME: CLI commands to inspect and manage recommendation history
// ABOUTME: Groups list, show, delete, and clear subcommands
package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOffset int
)

// NewHistoryCmd creates the history command group
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage past recommendation requests",
		Long: `Inspect and manage the recommendation history.

Examples:
  cinematch history list
  cinematch history show 3
  cinematch history delete 3
  cinematch history clear`,
	}

	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryShowCmd(),
		newHistoryDeleteCmd(),
		newHistoryClearCmd(),
	)

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past searches, most recent first",
		RunE:  runHistoryList,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of entries")
	cmd.Flags().IntVar(&historyOffset, "offset", 0, "Number of entries to skip")
	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	entries, err := history.List(historyLimit, historyOffset)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No history entries\n")
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tSEARCHED\tLANGUAGE\tWEIGHTS\tRESULTS\tWHEN\n")
	for _, entry := range entries {
		lang := entry.Query.Language
		if lang == "" {
			lang = "any"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f/%.2f\t%d\t%s\n",
			entry.ID,
			truncate(entry.Searched.Title, 35),
			lang,
			entry.Query.GenreWeight,
			entry.Query.OverviewWeight,
			entry.Count,
			formatTime(entry.CreatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d entr%s\n", len(entries), plural(len(entries)))
	}

	return nil
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one past search with its full ranked result",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid history id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	entry, err := history.Get(id)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), entry)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Search #%d (%s)\n", entry.ID, formatTime(entry.CreatedAt))
	fmt.Fprintf(out, "Searched: %s (%d), weights %.2f/%.2f\n\n",
		entry.Searched.Title, entry.Searched.Year,
		entry.Query.GenreWeight, entry.Query.OverviewWeight)

	if len(entry.Recommendations) == 0 {
		fmt.Fprintf(out, "No recommendations were produced\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tTITLE\tRATING\tSIMILARITY\tGENRE\tOVERVIEW\n")
	for _, rec := range entry.Recommendations {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.3f\t%.3f\t%.3f\n",
			rec.Rank,
			truncate(rec.Movie.Title, 40),
			rec.Movie.Rating,
			rec.Combined,
			rec.GenreSim,
			rec.OverviewSim)
	}
	w.Flush()

	return nil
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDelete,
	}
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid history id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := history.Delete(id); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted history entry %d\n", id)
	}
	return nil
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		RunE:  runHistoryClear,
	}
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := history.Clear(); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "History cleared\n")
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
