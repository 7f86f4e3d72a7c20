// ABOUTME: Catalog loader reading the movie set from a JSON file
// ABOUTME: Assigns stable IDs to entries that arrive without one
package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/harper/cinematch/internal/models"
)

// Load reads the catalog JSON file at path and builds an index over it.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return idx, nil
}

// LoadReader decodes a JSON array of movies and builds an index over it.
func LoadReader(r io.Reader) (*Index, error) {
	var movies []models.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for i := range movies {
		if movies[i].ID == 0 {
			movies[i].ID = i + 1
		}
	}
	return NewIndex(movies), nil
}

// Save writes movies to a catalog JSON file, creating or replacing it. The
// parent directory is created if needed, so a fresh install can fetch a
// catalog before anything else has touched the data directory.
func Save(path string, movies []models.Movie) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(movies); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return f.Close()
}
