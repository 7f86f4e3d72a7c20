// ABOUTME: Statistics aggregator deriving summary metrics from the history store
// ABOUTME: Scans entries on demand, nothing is persisted
package core

import (
	"sort"

	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/storage"
)

// Aggregator computes usage statistics from the history store.
type Aggregator struct {
	store storage.HistoryStore
}

// NewAggregator creates an Aggregator over the given store.
func NewAggregator(store storage.HistoryStore) *Aggregator {
	return &Aggregator{store: store}
}

// Compute scans all history entries and derives the summary. An empty store
// yields zero totals and an empty most-searched title.
func (a *Aggregator) Compute() (*models.Statistics, error) {
	entries, err := a.store.List(0, 0)
	if err != nil {
		return nil, err
	}

	stats := &models.Statistics{
		TotalSearches: int64(len(entries)),
	}

	// Entries arrive most recent first, so the first occurrence of a title
	// is also its most recent one. Ties on count go to the title seen
	// earliest in this order.
	titleCounts := make(map[string]int64)
	titleOrder := make(map[string]int)
	langCounts := make(map[string]int64)
	for i, entry := range entries {
		stats.TotalRecommendations += int64(entry.Count)

		title := entry.Searched.Title
		titleCounts[title]++
		if _, seen := titleOrder[title]; !seen {
			titleOrder[title] = i
		}

		lang := entry.Query.Language
		if lang == "" {
			lang = "any"
		}
		langCounts[lang]++
	}

	for title, count := range titleCounts {
		switch {
		case count > stats.MostSearchedCount:
			stats.MostSearched = title
			stats.MostSearchedCount = count
		case count == stats.MostSearchedCount && stats.MostSearched != "" &&
			titleOrder[title] < titleOrder[stats.MostSearched]:
			stats.MostSearched = title
		}
	}

	for lang, count := range langCounts {
		stats.LanguageDistribution = append(stats.LanguageDistribution,
			models.LanguageCount{Language: lang, Count: count})
	}
	sort.Slice(stats.LanguageDistribution, func(i, j int) bool {
		x, y := stats.LanguageDistribution[i], stats.LanguageDistribution[j]
		if x.Count != y.Count {
			return x.Count > y.Count
		}
		return x.Language < y.Language
	})

	return stats, nil
}
