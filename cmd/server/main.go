// ABOUTME: Main entry point for the cinematch MCP server with stdio transport
// ABOUTME: Initializes catalog, history store, and MCP server with all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/config"
	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/mcp"
	"github.com/harper/cinematch/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for the TMDb key and path overrides)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the catalog once; it is read-only for the process lifetime
	index, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog (run 'cinematch fetch' first): %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}
	defer func() { _ = db.Close() }()

	history := sqlite.NewHistoryStore(db)
	recommender := core.NewRecommender(index, history)

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Cinematch Recommender",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, recommender, history)

	// Start server with stdio transport
	log.Printf("cinematch MCP server starting on stdio (%d movies loaded)...", index.Len())
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
