// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Config loading, storage wiring, and output formatting helpers
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/config"
	"github.com/harper/cinematch/internal/storage/sqlite"
)

// loadConfig loads .env (if present) and the environment configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// loadCatalog reads and indexes the catalog file.
func loadCatalog(cfg *config.Config) (*catalog.Index, error) {
	idx, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog (run 'cinematch fetch' to build one): %w", err)
	}
	return idx, nil
}

// openHistory opens the history database.
func openHistory(cfg *config.Config) (*sqlite.DB, *sqlite.HistoryStore, error) {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return db, sqlite.NewHistoryStore(db), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}
