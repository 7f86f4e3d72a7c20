// ABOUTME: Recommender orchestrates matching, scoring, ranking, and history
// ABOUTME: History appends are best-effort and never fail the request
package core

import (
	"fmt"
	"os"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/storage"
)

// Recommender ties the matcher, similarity engine, and ranker together and
// records successful requests in the history store.
type Recommender struct {
	index   *catalog.Index
	matcher Matcher
	engine  *Engine
	history storage.HistoryStore
	warnf   func(format string, args ...interface{})
}

// NewRecommender creates a Recommender over the given catalog. history may be
// nil, in which case requests are not recorded.
func NewRecommender(index *catalog.Index, history storage.HistoryStore) *Recommender {
	return &Recommender{
		index:   index,
		matcher: NewTitleMatcher(index),
		engine:  NewEngine(index),
		history: history,
		warnf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
}

// SetMatcher replaces the matching heuristic.
func (r *Recommender) SetMatcher(m Matcher) {
	r.matcher = m
}

// Recommend validates the query, resolves the searched movie, scores and
// ranks all eligible candidates, and appends a history entry. A zero-result
// outcome is a success with an explanatory message. A failed history append
// is reported on stderr but does not fail the request.
func (r *Recommender) Recommend(query models.SimilarityQuery) (*models.Result, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matched, err := r.matcher.Match(query.MovieName)
	if err != nil {
		return nil, err
	}

	genreWeight, overviewWeight := query.NormalizedWeights()
	candidates := r.engine.Score(matched, query.LanguageCode(), genreWeight, overviewWeight)
	ranked := Rank(candidates, query.ResultLimit())

	result := &models.Result{
		Searched:        matched,
		Recommendations: ranked,
		TotalCandidates: len(candidates),
	}
	if len(ranked) == 0 {
		if query.LanguageCode() != "" {
			result.Message = "no similar movies found for the selected language"
		} else {
			result.Message = "no similar movies found"
		}
	}

	if r.history != nil {
		entry := &models.HistoryEntry{
			Searched:        matched,
			Query:           query,
			Recommendations: ranked,
			Count:           len(ranked),
		}
		if _, err := r.history.Append(entry); err != nil {
			r.warnf("Warning: failed to record history: %v\n", err)
		}
	}

	return result, nil
}
