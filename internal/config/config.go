// ABOUTME: Centralized configuration for the cinematch binaries
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the recommendation system
type Config struct {
	// Data paths
	CatalogPath string
	DBPath      string

	// Recommendation settings
	GenreWeight    float64
	OverviewWeight float64
	MaxResults     int

	// HTTP server settings
	HTTPAddr string

	// TMDb settings (catalog fetching)
	TMDbKey     string
	TMDbBaseURL string
	TMDbPages   int
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
}

// DefaultDataDir returns the XDG data directory for cinematch.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/cinematch"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "cinematch")
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dataDir := DefaultDataDir()
	cfg := &Config{
		// Defaults
		CatalogPath:    getEnv("CINEMATCH_CATALOG", filepath.Join(dataDir, "catalog.json")),
		DBPath:         getEnv("CINEMATCH_DB", filepath.Join(dataDir, "history.db")),
		GenreWeight:    getEnvFloat("CINEMATCH_GENRE_WEIGHT", 0.7),
		OverviewWeight: getEnvFloat("CINEMATCH_OVERVIEW_WEIGHT", 0.3),
		MaxResults:     getEnvInt("CINEMATCH_MAX_RESULTS", 10),
		HTTPAddr:       getEnv("CINEMATCH_HTTP_ADDR", ":8080"),
		TMDbKey:        os.Getenv("TMDB_API_KEY"),
		TMDbBaseURL:    getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDbPages:      getEnvInt("TMDB_PAGES", 5),
		Timeout:        getEnvDuration("TMDB_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("TMDB_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("TMDB_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.GenreWeight < 0 || c.OverviewWeight < 0 {
		return fmt.Errorf("weights must not be negative, got %f/%f", c.GenreWeight, c.OverviewWeight)
	}
	if c.GenreWeight+c.OverviewWeight == 0 {
		return fmt.Errorf("at least one of CINEMATCH_GENRE_WEIGHT and CINEMATCH_OVERVIEW_WEIGHT must be positive")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("CINEMATCH_MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("TMDB_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.TMDbPages < 1 || c.TMDbPages > 500 {
		return fmt.Errorf("TMDB_PAGES must be 1-500, got %d", c.TMDbPages)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
