// ABOUTME: Similarity engine computing weighted cosine scores over the catalog
// ABOUTME: Exhaustive scan reusing the vectors cached at catalog load
package core

import (
	"math"
	"strings"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/models"
)

// Engine scores every eligible catalog movie against a matched movie. Genre
// similarity is the cosine of the multi-hot genre vectors; overview
// similarity the cosine of the normalized TF-IDF vectors. The combined score
// is the weighted sum using renormalized weights.
type Engine struct {
	index *catalog.Index
}

// NewEngine creates an Engine over the given index.
func NewEngine(index *catalog.Index) *Engine {
	return &Engine{index: index}
}

// Score computes similarity breakdowns for every catalog movie other than
// matched, restricted to langFilter when non-empty. genreWeight and
// overviewWeight must already be renormalized to sum to 1. The returned
// candidates are unordered and unranked.
func (e *Engine) Score(matched models.Movie, langFilter string, genreWeight, overviewWeight float64) []models.Recommendation {
	features := e.index.Features()
	matchedGenre, matchedText := features.Project(matched)

	var candidates []models.Recommendation
	for i, movie := range e.index.All() {
		if movie.ID == matched.ID {
			continue
		}
		if langFilter != "" && !strings.EqualFold(movie.Language, langFilter) {
			continue
		}

		genreSim := cosineDense(matchedGenre, features.GenreVector(i))
		overviewSim := dotSparse(matchedText, features.TextVector(i))

		candidates = append(candidates, models.Recommendation{
			Movie:       movie,
			GenreSim:    genreSim,
			OverviewSim: overviewSim,
			Combined:    genreWeight*genreSim + overviewWeight*overviewSim,
		})
	}
	return candidates
}

// cosineDense is the cosine similarity of two dense vectors. A zero vector
// yields 0, which keeps movies without genres comparable.
func cosineDense(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// dotSparse is the dot product of two sparse vectors. Both sides are
// L2-normalized at construction, so this equals their cosine similarity; an
// empty overview yields a nil vector and a similarity of 0.
func dotSparse(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for i, w := range a {
		dot += w * b[i]
	}
	return dot
}
