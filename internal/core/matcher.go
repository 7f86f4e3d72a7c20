// ABOUTME: Matcher resolves a free-text movie name to one catalog entry
// ABOUTME: Exact title match first, then substring with rating tie-break
package core

import (
	"fmt"
	"strings"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/models"
)

// Matcher resolves a movie name to a single catalog movie. It lives behind an
// interface so the heuristic can be swapped without touching the similarity
// engine or ranker.
type Matcher interface {
	Match(name string) (models.Movie, error)
}

// TitleMatcher matches case-insensitively: exact title first, then substring.
// Among multiple substring matches the highest-rated wins, ties broken by
// shortest title, then lexical order. The query's language filter is never
// applied here; it restricts candidates only.
type TitleMatcher struct {
	index *catalog.Index
}

// NewTitleMatcher creates a TitleMatcher over the given index.
func NewTitleMatcher(index *catalog.Index) *TitleMatcher {
	return &TitleMatcher{index: index}
}

// Match resolves name to one catalog movie or models.ErrNotFound.
func (m *TitleMatcher) Match(name string) (models.Movie, error) {
	candidates := m.index.FindByTitle(name)
	if len(candidates) == 0 {
		needle := strings.ToLower(strings.TrimSpace(name))
		for _, movie := range m.index.All() {
			if strings.Contains(strings.ToLower(movie.Title), needle) {
				candidates = append(candidates, movie)
			}
		}
	}
	if len(candidates) == 0 {
		return models.Movie{}, fmt.Errorf("movie %q: %w", name, models.ErrNotFound)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if closerMatch(c, best) {
			best = c
		}
	}
	return best, nil
}

// closerMatch reports whether a beats b: higher rating first, then the
// shorter title (closest to the query), then lexical order for determinism.
func closerMatch(a, b models.Movie) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	if len(a.Title) != len(b.Title) {
		return len(a.Title) < len(b.Title)
	}
	return a.Title < b.Title
}
