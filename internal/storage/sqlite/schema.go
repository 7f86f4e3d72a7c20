// ABOUTME: SQLite database schema for recommendation history storage
// ABOUTME: One history row per request plus its ranked recommendation rows
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- One row per recommendation request
CREATE TABLE IF NOT EXISTS recommendation_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    searched_movie_id INTEGER,
    searched_title TEXT NOT NULL,
    searched_year INTEGER,
    searched_language TEXT,
    searched_genres TEXT,
    searched_overview TEXT,
    searched_rating REAL,
    query_name TEXT,
    language_preference TEXT,
    genre_weight REAL NOT NULL,
    overview_weight REAL NOT NULL,
    num_recommendations INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Ranked recommendations belonging to a history row
CREATE TABLE IF NOT EXISTS recommended_movies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    history_id INTEGER NOT NULL REFERENCES recommendation_history(id) ON DELETE CASCADE,
    movie_id INTEGER,
    title TEXT NOT NULL,
    year INTEGER,
    language TEXT,
    genres TEXT,
    overview TEXT,
    rating REAL,
    similarity REAL NOT NULL,
    genre_similarity REAL NOT NULL,
    overview_similarity REAL NOT NULL,
    rank INTEGER NOT NULL
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_history_created ON recommendation_history(created_at);
CREATE INDEX IF NOT EXISTS idx_history_title ON recommendation_history(searched_title);
CREATE INDEX IF NOT EXISTS idx_recommended_history ON recommended_movies(history_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
