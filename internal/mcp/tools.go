// ABOUTME: MCP tool definitions and registration for the cinematch server
// ABOUTME: Defines JSON schemas for the recommend, history, and stats tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, recommender *core.Recommender, history storage.HistoryStore) *Handlers {
	handlers := &Handlers{
		recommender: recommender,
		history:     history,
		aggregator:  core.NewAggregator(history),
	}

	// 1. recommend_movies - Recommend movies similar to a given title
	server.AddTool(mcp.Tool{
		Name:        "recommend_movies",
		Description: "Recommend movies similar to a given title, ranked by weighted genre and overview similarity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"movie_name": map[string]interface{}{
					"type":        "string",
					"description": "Title of the movie to find recommendations for",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Optional language filter for candidates (code or name, e.g. en, english, hindi)",
				},
				"genre_weight": map[string]interface{}{
					"type":        "number",
					"description": "Weight of genre similarity (default: 0.7)",
					"default":     0.7,
				},
				"overview_weight": map[string]interface{}{
					"type":        "number",
					"description": "Weight of overview similarity (default: 0.3)",
					"default":     0.3,
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of recommendations (default: 10)",
					"default":     10,
				},
			},
			Required: []string{"movie_name"},
		},
	}, handlers.RecommendMovies)

	// 2. list_history - List past recommendation requests
	server.AddTool(mcp.Tool{
		Name:        "list_history",
		Description: "List past recommendation requests, most recent first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of entries to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.ListHistory)

	// 3. get_history_entry - Get one past request with its full result
	server.AddTool(mcp.Tool{
		Name:        "get_history_entry",
		Description: "Get one past recommendation request with its full ranked result.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "number",
					"description": "History entry id",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.GetHistoryEntry)

	// 4. delete_history_entry - Delete one history entry
	server.AddTool(mcp.Tool{
		Name:        "delete_history_entry",
		Description: "Delete one recommendation history entry by id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "number",
					"description": "History entry id",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.DeleteHistoryEntry)

	// 5. clear_history - Remove all history entries
	server.AddTool(mcp.Tool{
		Name:        "clear_history",
		Description: "Remove all recommendation history entries.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearHistory)

	// 6. get_statistics - Aggregate usage statistics
	server.AddTool(mcp.Tool{
		Name:        "get_statistics",
		Description: "Get aggregate usage statistics: total searches, total recommendations, most searched title, language distribution.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetStatistics)

	return handlers
}
