// ABOUTME: Tests for the catalog index
// ABOUTME: Verifies title lookup, iteration, and vocabulary construction
package catalog

import (
	"strings"
	"testing"

	"github.com/harper/cinematch/internal/models"
)

func testMovies() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Inception", Year: 2010, Language: "en", Genres: []string{"Sci-Fi", "Thriller"}, Overview: "dream heist", Rating: 8.8},
		{ID: 2, Title: "Interstellar", Year: 2014, Language: "en", Genres: []string{"Sci-Fi", "Drama"}, Overview: "space and time travel", Rating: 8.6},
		{ID: 3, Title: "Dangal", Year: 2016, Language: "hi", Genres: []string{"Drama", "Sport"}, Overview: "wrestling father trains daughters", Rating: 8.4},
	}
}

func TestIndexFindByTitle(t *testing.T) {
	idx := NewIndex(testMovies())

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantID    int
	}{
		{"exact match", "Inception", 1, 1},
		{"case insensitive", "inception", 1, 1},
		{"surrounding whitespace", "  Interstellar  ", 1, 2},
		{"no match", "Tenet", 0, 0},
		{"substring is not exact", "Incep", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := idx.FindByTitle(tt.query)
			if len(found) != tt.wantCount {
				t.Fatalf("FindByTitle(%q) returned %d movies, want %d", tt.query, len(found), tt.wantCount)
			}
			if tt.wantCount > 0 && found[0].ID != tt.wantID {
				t.Errorf("FindByTitle(%q)[0].ID = %d, want %d", tt.query, found[0].ID, tt.wantID)
			}
		})
	}
}

func TestIndexFindByTitleDuplicates(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Title: "Drishyam", Year: 2013, Language: "ml", Rating: 8.3},
		{ID: 2, Title: "Drishyam", Year: 2015, Language: "hi", Rating: 8.2},
	}
	idx := NewIndex(movies)

	found := idx.FindByTitle("drishyam")
	if len(found) != 2 {
		t.Fatalf("FindByTitle() returned %d movies, want 2", len(found))
	}
}

func TestIndexAll(t *testing.T) {
	movies := testMovies()
	idx := NewIndex(movies)

	all := idx.All()
	if len(all) != len(movies) {
		t.Fatalf("All() returned %d movies, want %d", len(all), len(movies))
	}
	for i := range all {
		if all[i].ID != movies[i].ID {
			t.Errorf("All()[%d].ID = %d, want %d (load order must be preserved)", i, all[i].ID, movies[i].ID)
		}
	}
	if idx.Len() != len(movies) {
		t.Errorf("Len() = %d, want %d", idx.Len(), len(movies))
	}
}

func TestIndexGenreVocabulary(t *testing.T) {
	idx := NewIndex(testMovies())

	vocab := idx.GenreVocabulary()
	want := []string{"Drama", "Sci-Fi", "Sport", "Thriller"}
	if len(vocab) != len(want) {
		t.Fatalf("GenreVocabulary() = %v, want %v", vocab, want)
	}
	for i := range want {
		if vocab[i] != want[i] {
			t.Errorf("GenreVocabulary()[%d] = %q, want %q (must be sorted and distinct)", i, vocab[i], want[i])
		}
	}
}

func TestLoadReader(t *testing.T) {
	data := `[
		{"title": "Inception", "year": 2010, "language": "en", "genres": ["Sci-Fi"], "overview": "dream heist", "rating": 8.8},
		{"id": 42, "title": "Interstellar", "year": 2014, "language": "en", "genres": ["Sci-Fi"], "overview": "space", "rating": 8.6}
	]`

	idx, err := LoadReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	// Entries without an id get a stable positional one
	if got := idx.All()[0].ID; got != 1 {
		t.Errorf("assigned ID = %d, want 1", got)
	}
	// Explicit ids are preserved
	if got := idx.All()[1].ID; got != 42 {
		t.Errorf("explicit ID = %d, want 42", got)
	}
}

func TestLoadReaderInvalid(t *testing.T) {
	if _, err := LoadReader(strings.NewReader("{not json")); err == nil {
		t.Error("LoadReader() should fail on malformed JSON")
	}
}
