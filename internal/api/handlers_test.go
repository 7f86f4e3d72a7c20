// ABOUTME: Tests for the HTTP API handlers
// ABOUTME: Runs requests through the full chi router with an in-memory store
package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/harper/cinematch/internal/catalog"
	"github.com/harper/cinematch/internal/core"
	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/storage/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := sqlite.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	index := catalog.NewIndex([]models.Movie{
		{ID: 1, Title: "Inception", Year: 2010, Language: "en", Genres: []string{"Sci-Fi", "Thriller"}, Overview: "dream heist", Rating: 8.8},
		{ID: 2, Title: "Interstellar", Year: 2014, Language: "en", Genres: []string{"Sci-Fi", "Drama"}, Overview: "space and time", Rating: 8.6},
		{ID: 3, Title: "Dangal", Year: 2016, Language: "hi", Genres: []string{"Drama", "Sport"}, Overview: "wrestling", Rating: 8.4},
	})

	store := sqlite.NewHistoryStore(db)
	return NewServer(core.NewRecommender(index, store), store, 0.7, 0.3)
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleRecommend(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/recommend",
		`{"movie_name": "inception"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result models.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Searched.Title != "Inception" {
		t.Errorf("Searched.Title = %q, want Inception", result.Searched.Title)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations returned")
	}
	for _, r := range result.Recommendations {
		if r.Movie.ID == result.Searched.ID {
			t.Error("searched movie appeared in recommendations")
		}
	}

	// The request should have been recorded
	list := doJSON(t, s.Handler(), http.MethodGet, "/api/history", "")
	if list.Code != http.StatusOK {
		t.Fatalf("history status = %d", list.Code)
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal(list.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}
	// Unset weights take the server defaults
	if entries[0].Query.GenreWeight != 0.7 || entries[0].Query.OverviewWeight != 0.3 {
		t.Errorf("recorded weights = %v/%v, want 0.7/0.3",
			entries[0].Query.GenreWeight, entries[0].Query.OverviewWeight)
	}
}

func TestHandleRecommendErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"movie_name":`, http.StatusBadRequest},
		{"empty name", `{"movie_name": ""}`, http.StatusBadRequest},
		{"negative weight", `{"movie_name": "Inception", "genre_weight": -1, "overview_weight": 2}`, http.StatusBadRequest},
		{"unknown movie", `{"movie_name": "No Such Movie"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s.Handler(), http.MethodPost, "/api/recommend", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Error == "" {
				t.Error("error response has empty message")
			}
		})
	}
}

func TestHandleHistoryLifecycle(t *testing.T) {
	s := newTestServer(t)

	// Seed two entries
	for _, name := range []string{"Inception", "Dangal"} {
		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/recommend",
			`{"movie_name": "`+name+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("seed %s: status = %d", name, rec.Code)
		}
	}

	list := doJSON(t, s.Handler(), http.MethodGet, "/api/history", "")
	var entries []models.HistoryEntry
	if err := json.Unmarshal(list.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}

	// Fetch one entry with its recommendations
	get := doJSON(t, s.Handler(), http.MethodGet, "/api/history/1", "")
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}
	var entry models.HistoryEntry
	if err := json.Unmarshal(get.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if len(entry.Recommendations) == 0 {
		t.Error("entry has no recommendations hydrated")
	}

	// Delete it
	del := doJSON(t, s.Handler(), http.MethodDelete, "/api/history/1", "")
	if del.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", del.Code)
	}
	if again := doJSON(t, s.Handler(), http.MethodDelete, "/api/history/1", ""); again.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", again.Code)
	}
	if bad := doJSON(t, s.Handler(), http.MethodDelete, "/api/history/abc", ""); bad.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", bad.Code)
	}

	// Clear the rest
	cleared := doJSON(t, s.Handler(), http.MethodDelete, "/api/history", "")
	if cleared.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", cleared.Code)
	}
	list = doJSON(t, s.Handler(), http.MethodGet, "/api/history", "")
	if err := json.Unmarshal(list.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("history has %d entries after clear", len(entries))
	}
}

func TestHandleHistoryGetNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/history/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 2; i++ {
		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/recommend",
			`{"movie_name": "Inception", "language": "english"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("seed: status = %d", rec.Code)
		}
	}

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats models.Statistics
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalSearches != 2 {
		t.Errorf("TotalSearches = %d, want 2", stats.TotalSearches)
	}
	if stats.MostSearched != "Inception" {
		t.Errorf("MostSearched = %q, want Inception", stats.MostSearched)
	}
	if len(stats.LanguageDistribution) != 1 || stats.LanguageDistribution[0].Language != "english" {
		t.Errorf("LanguageDistribution = %+v", stats.LanguageDistribution)
	}
}

func TestRequestMetricLabels(t *testing.T) {
	s := newTestServer(t)

	// Requests with path parameters must be counted under the route
	// pattern, not the raw path, so the label set stays bounded.
	patternCounter := requestsTotal.WithLabelValues("/api/history/{id}", "404")
	before := testutil.ToFloat64(patternCounter)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/history/12345", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if got := testutil.ToFloat64(patternCounter); got != before+1 {
		t.Errorf("pattern counter = %v, want %v", got, before+1)
	}
	if raw := testutil.ToFloat64(requestsTotal.WithLabelValues("/api/history/12345", "404")); raw != 0 {
		t.Errorf("raw path counter = %v, want 0", raw)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
