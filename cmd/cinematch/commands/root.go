// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the cinematch command tree
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████╗██╗███╗   ██╗███████╗███╗   ███╗ █████╗ ████████╗ ██████╗██╗  ██╗
██╔════╝██║████╗  ██║██╔════╝████╗ ████║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
██║     ██║██╔██╗ ██║█████╗  ██╔████╔██║███████║   ██║   ██║     ███████║
██║     ██║██║╚██╗██║██╔══╝  ██║╚██╔╝██║██╔══██║   ██║   ██║     ██╔══██║
╚██████╗██║██║ ╚████║███████╗██║ ╚═╝ ██║██║  ██║   ██║   ╚██████╗██║  ██║
 ╚═════╝╚═╝╚═╝  ╚═══╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cinematch",
		Short: "Movie recommendations from genre and overview similarity",
		Long: banner + `
Cinematch recommends movies similar to a title you give it, combining
genre and overview similarity into one ranked list, and keeps a
queryable history of past searches with aggregate statistics.

Examples:
  cinematch recommend "Inception"
  cinematch recommend "Inception" --language hindi --genre-weight 1.0
  cinematch history list
  cinematch stats`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewRecommendCmd(),
		NewHistoryCmd(),
		NewStatsCmd(),
		NewServeCmd(),
		NewFetchCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
