// ABOUTME: History storage operations for SQLite
// ABOUTME: Implements append, list, get, delete, and clear over history rows
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/storage"
)

// HistoryStore handles recommendation history persistence
type HistoryStore struct {
	db *DB
	mu sync.Mutex // Serializes mutations relative to each other and to reads
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Append stores an entry and its recommendations in one transaction and
// returns the assigned id. The request either fully appends or not at all.
func (s *HistoryStore) Append(entry *models.HistoryEntry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return 0, &models.PersistenceError{Op: "append", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	searchedGenres, err := json.Marshal(entry.Searched.Genres)
	if err != nil {
		return 0, &models.PersistenceError{Op: "append", Err: err}
	}

	res, err := tx.Exec(`
		INSERT INTO recommendation_history
			(searched_movie_id, searched_title, searched_year, searched_language,
			 searched_genres, searched_overview, searched_rating, query_name,
			 language_preference, genre_weight, overview_weight,
			 num_recommendations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.Searched.ID, entry.Searched.Title, entry.Searched.Year,
		entry.Searched.Language, string(searchedGenres), entry.Searched.Overview,
		entry.Searched.Rating, entry.Query.MovieName, entry.Query.Language,
		entry.Query.GenreWeight, entry.Query.OverviewWeight,
		len(entry.Recommendations), createdAt)
	if err != nil {
		return 0, &models.PersistenceError{Op: "append", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &models.PersistenceError{Op: "append", Err: err}
	}

	for _, rec := range entry.Recommendations {
		genres, err := json.Marshal(rec.Movie.Genres)
		if err != nil {
			return 0, &models.PersistenceError{Op: "append", Err: err}
		}
		_, err = tx.Exec(`
			INSERT INTO recommended_movies
				(history_id, movie_id, title, year, language, genres, overview,
				 rating, similarity, genre_similarity, overview_similarity, rank)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, rec.Movie.ID, rec.Movie.Title, rec.Movie.Year, rec.Movie.Language,
			string(genres), rec.Movie.Overview, rec.Movie.Rating,
			rec.Combined, rec.GenreSim, rec.OverviewSim, rec.Rank)
		if err != nil {
			return 0, &models.PersistenceError{Op: "append", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &models.PersistenceError{Op: "append", Err: err}
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	entry.Count = len(entry.Recommendations)
	return id, nil
}

// List returns entries most recent first, without their recommendation
// lists. A limit of zero or less means no limit.
func (s *HistoryStore) List(limit, offset int) ([]models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = -1 // SQLite: LIMIT -1 means unlimited
	}

	rows, err := s.db.Query(`
		SELECT id, searched_movie_id, searched_title, searched_year,
		       searched_language, searched_genres, searched_overview,
		       searched_rating, query_name, language_preference, genre_weight,
		       overview_weight, num_recommendations, created_at
		FROM recommendation_history
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var entries []models.HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, &models.PersistenceError{Op: "list", Err: err}
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}

	return entries, nil
}

// Get returns the full entry with its ordered recommendations.
func (s *HistoryStore) Get(id int64) (*models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, searched_movie_id, searched_title, searched_year,
		       searched_language, searched_genres, searched_overview,
		       searched_rating, query_name, language_preference, genre_weight,
		       overview_weight, num_recommendations, created_at
		FROM recommendation_history
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, &models.PersistenceError{Op: "get", Err: err}
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &models.PersistenceError{Op: "get", Err: err}
		}
		return nil, fmt.Errorf("history entry %d: %w", id, models.ErrNotFound)
	}
	entry, err := scanEntry(rows)
	if err != nil {
		return nil, &models.PersistenceError{Op: "get", Err: err}
	}

	recs, err := s.recommendationsFor(id)
	if err != nil {
		return nil, err
	}
	entry.Recommendations = recs

	return entry, nil
}

// Delete removes one entry and its recommendations.
func (s *HistoryStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Recommendation rows first, in case foreign keys are off for this
	// connection.
	if _, err := s.db.Exec(`DELETE FROM recommended_movies WHERE history_id = ?`, id); err != nil {
		return &models.PersistenceError{Op: "delete", Err: err}
	}
	res, err := s.db.Exec(`DELETE FROM recommendation_history WHERE id = ?`, id)
	if err != nil {
		return &models.PersistenceError{Op: "delete", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &models.PersistenceError{Op: "delete", Err: err}
	}
	if affected == 0 {
		return fmt.Errorf("history entry %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// Clear removes all entries. Clearing an empty store succeeds.
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM recommended_movies`); err != nil {
		return &models.PersistenceError{Op: "clear", Err: err}
	}
	if _, err := s.db.Exec(`DELETE FROM recommendation_history`); err != nil {
		return &models.PersistenceError{Op: "clear", Err: err}
	}
	return nil
}

// recommendationsFor loads the ordered recommendation list for a history row.
func (s *HistoryStore) recommendationsFor(historyID int64) ([]models.Recommendation, error) {
	rows, err := s.db.Query(`
		SELECT movie_id, title, year, language, genres, overview, rating,
		       similarity, genre_similarity, overview_similarity, rank
		FROM recommended_movies
		WHERE history_id = ?
		ORDER BY rank
	`, historyID)
	if err != nil {
		return nil, &models.PersistenceError{Op: "get", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var recs []models.Recommendation
	for rows.Next() {
		var (
			rec    models.Recommendation
			genres string
		)
		err := rows.Scan(&rec.Movie.ID, &rec.Movie.Title, &rec.Movie.Year,
			&rec.Movie.Language, &genres, &rec.Movie.Overview, &rec.Movie.Rating,
			&rec.Combined, &rec.GenreSim, &rec.OverviewSim, &rec.Rank)
		if err != nil {
			return nil, &models.PersistenceError{Op: "get", Err: err}
		}
		if err := json.Unmarshal([]byte(genres), &rec.Movie.Genres); err != nil {
			return nil, &models.PersistenceError{Op: "get", Err: err}
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "get", Err: err}
	}

	return recs, nil
}

// scanEntry scans one history row, leaving Recommendations empty.
func scanEntry(rows *sql.Rows) (*models.HistoryEntry, error) {
	var (
		entry     models.HistoryEntry
		queryName sql.NullString
		language  sql.NullString
		genres    string
	)
	err := rows.Scan(&entry.ID, &entry.Searched.ID, &entry.Searched.Title,
		&entry.Searched.Year, &entry.Searched.Language, &genres,
		&entry.Searched.Overview, &entry.Searched.Rating, &queryName,
		&language, &entry.Query.GenreWeight, &entry.Query.OverviewWeight,
		&entry.Count, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(genres), &entry.Searched.Genres); err != nil {
		return nil, err
	}
	if queryName.Valid && queryName.String != "" {
		entry.Query.MovieName = queryName.String
	} else {
		// Rows written before query_name existed fall back to the title.
		entry.Query.MovieName = entry.Searched.Title
	}
	if language.Valid {
		entry.Query.Language = language.String
	}
	return &entry, nil
}

var _ storage.HistoryStore = (*HistoryStore)(nil)
