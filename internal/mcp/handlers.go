// ABOUTME: MCP tool handler implementations for the cinematch server
// ABOUTME: Maps tool calls onto the recommender, history store, and aggregator
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	recommender *core.Recommender
	history     storage.HistoryStore
	aggregator  *core.Aggregator
}

// RecommendMovies handles the recommend_movies tool
func (h *Handlers) RecommendMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	movieName, err := request.RequireString("movie_name")
	if err != nil {
		return mcp.NewToolResultError("movie_name argument is required and must be a string"), nil
	}

	query := models.SimilarityQuery{
		MovieName:      movieName,
		Language:       request.GetString("language", ""),
		GenreWeight:    request.GetFloat("genre_weight", 0.7),
		OverviewWeight: request.GetFloat("overview_weight", 0.3),
		Limit:          request.GetInt("limit", models.DefaultResultLimit),
	}

	result, err := h.recommender.Recommend(query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	return jsonResult(result)
}

// ListHistory handles the list_history tool
func (h *Handlers) ListHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", models.DefaultResultLimit)

	entries, err := h.history.List(limit, 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list history: %v", err)), nil
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	return jsonResult(entries)
}

// GetHistoryEntry handles the get_history_entry tool
func (h *Handlers) GetHistoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id argument is required and must be a positive number"), nil
	}

	entry, err := h.history.Get(int64(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("history entry %d not found", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to get history entry: %v", err)), nil
	}

	return jsonResult(entry)
}

// DeleteHistoryEntry handles the delete_history_entry tool
func (h *Handlers) DeleteHistoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id argument is required and must be a positive number"), nil
	}

	if err := h.history.Delete(int64(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("history entry %d not found", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete history entry: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("deleted history entry %d", id)), nil
}

// ClearHistory handles the clear_history tool
func (h *Handlers) ClearHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.history.Clear(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to clear history: %v", err)), nil
	}
	return mcp.NewToolResultText("history cleared"), nil
}

// GetStatistics handles the get_statistics tool
func (h *Handlers) GetStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.aggregator.Compute()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute statistics: %v", err)), nil
	}
	return jsonResult(stats)
}

// jsonResult marshals a value into a text tool result
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
