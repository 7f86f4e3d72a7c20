// ABOUTME: Tests for the ranker
// ABOUTME: Verifies the deterministic total order, truncation, and rank assignment
package core

import (
	"testing"

	"github.com/harper/cinematch/internal/models"
)

func rec(title string, rating, combined float64) models.Recommendation {
	return models.Recommendation{
		Movie:    models.Movie{Title: title, Rating: rating},
		Combined: combined,
	}
}

func TestRankOrder(t *testing.T) {
	candidates := []models.Recommendation{
		rec("Low", 9.0, 0.2),
		rec("High", 5.0, 0.9),
		rec("Mid", 7.0, 0.5),
	}

	ranked := Rank(candidates, 10)

	want := []string{"High", "Mid", "Low"}
	for i, title := range want {
		if ranked[i].Movie.Title != title {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Movie.Title, title)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("ranked[%d].Rank = %d, want %d", i, ranked[i].Rank, i+1)
		}
	}
}

func TestRankTieBreaks(t *testing.T) {
	candidates := []models.Recommendation{
		rec("Beta", 7.0, 0.5),
		rec("Alpha", 7.0, 0.5),
		rec("Gamma", 8.0, 0.5),
	}

	ranked := Rank(candidates, 10)

	// Equal combined: higher rating first; equal rating: title ascending.
	want := []string{"Gamma", "Alpha", "Beta"}
	for i, title := range want {
		if ranked[i].Movie.Title != title {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Movie.Title, title)
		}
	}
}

func TestRankTruncates(t *testing.T) {
	candidates := []models.Recommendation{
		rec("A", 7, 0.9), rec("B", 7, 0.8), rec("C", 7, 0.7), rec("D", 7, 0.6),
	}

	ranked := Rank(candidates, 2)
	if len(ranked) != 2 {
		t.Fatalf("Rank() returned %d, want 2", len(ranked))
	}
	if ranked[0].Movie.Title != "A" || ranked[1].Movie.Title != "B" {
		t.Errorf("Rank() kept %q, %q; want A, B", ranked[0].Movie.Title, ranked[1].Movie.Title)
	}
}

func TestRankEmpty(t *testing.T) {
	ranked := Rank(nil, 10)
	if ranked == nil {
		t.Fatal("Rank(nil) = nil, want empty slice")
	}
	if len(ranked) != 0 {
		t.Errorf("Rank(nil) length = %d, want 0", len(ranked))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := []models.Recommendation{
		rec("B", 7, 0.1),
		rec("A", 7, 0.9),
	}

	_ = Rank(candidates, 10)
	if candidates[0].Movie.Title != "B" {
		t.Error("Rank() must not reorder its input slice")
	}
	if candidates[0].Rank != 0 {
		t.Error("Rank() must not assign ranks to its input slice")
	}
}
