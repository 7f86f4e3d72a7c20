// ABOUTME: Ranker ordering candidates into a deterministic total order
// ABOUTME: Sorts, truncates to the result limit, and assigns 1-based ranks
package core

import (
	"sort"

	"github.com/harper/cinematch/internal/models"
)

// Rank sorts candidates by combined similarity descending, breaking ties by
// rating descending and then title ascending, truncates to limit, and
// assigns 1-based ranks. An empty input returns an empty (non-nil) slice.
func Rank(candidates []models.Recommendation, limit int) []models.Recommendation {
	ranked := make([]models.Recommendation, len(candidates))
	copy(ranked, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Combined != b.Combined {
			return a.Combined > b.Combined
		}
		if a.Movie.Rating != b.Movie.Rating {
			return a.Movie.Rating > b.Movie.Rating
		}
		return a.Movie.Title < b.Movie.Title
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
