// ABOUTME: In-memory catalog index with title lookup and fitted feature spaces
// ABOUTME: Built once at startup, read-only afterwards, safe for concurrent reads
package catalog

import (
	"strings"

	"github.com/harper/cinematch/internal/models"
)

// Index holds the loaded movie set plus the derived lookup structures: a
// lowercase title index and the feature spaces fitted over the catalog.
// It is immutable after NewIndex returns.
type Index struct {
	movies   []models.Movie
	byTitle  map[string][]int
	features *Features
}

// NewIndex builds an index over the given movies and fits the genre and text
// feature spaces. The movies slice is retained; callers must not mutate it.
func NewIndex(movies []models.Movie) *Index {
	idx := &Index{
		movies:  movies,
		byTitle: make(map[string][]int, len(movies)),
	}
	for i, m := range movies {
		key := strings.ToLower(m.Title)
		idx.byTitle[key] = append(idx.byTitle[key], i)
	}
	idx.features = fitFeatures(movies)
	return idx
}

// FindByTitle returns all movies whose title equals text, case-insensitively.
func (idx *Index) FindByTitle(text string) []models.Movie {
	positions := idx.byTitle[strings.ToLower(strings.TrimSpace(text))]
	if len(positions) == 0 {
		return nil
	}
	found := make([]models.Movie, len(positions))
	for i, pos := range positions {
		found[i] = idx.movies[pos]
	}
	return found
}

// All returns the full movie set in load order. The returned slice is shared;
// callers must treat it as read-only.
func (idx *Index) All() []models.Movie {
	return idx.movies
}

// Len returns the number of movies in the catalog.
func (idx *Index) Len() int {
	return len(idx.movies)
}

// GenreVocabulary returns the sorted set of distinct genre tokens observed at
// load time.
func (idx *Index) GenreVocabulary() []string {
	return idx.features.genreVocab
}

// Features returns the feature spaces fitted over this catalog.
func (idx *Index) Features() *Features {
	return idx.features
}
