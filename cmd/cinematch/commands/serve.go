// ABOUTME: CLI command starting the HTTP API server
// ABOUTME: Serves recommend, history, stats, health, and metrics endpoints
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/cinematch/internal/api"
	"github.com/harper/cinematch/internal/core"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recommendation API over HTTP",
		Long: `Start the HTTP API server.

Endpoints:
  POST   /api/recommend
  GET    /api/history
  GET    /api/history/{id}
  DELETE /api/history/{id}
  DELETE /api/history
  GET    /api/stats
  GET    /healthz
  GET    /metrics`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
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

	addr := serveAddr
	if addr == "" {
		addr = cfg.HTTPAddr
	}

	recommender := core.NewRecommender(index, history)
	server := api.NewServer(recommender, history, cfg.GenreWeight, cfg.OverviewWeight)
	return server.ListenAndServe(addr)
}
