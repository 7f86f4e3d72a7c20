// ABOUTME: TMDb API client used to build the local movie catalog
// ABOUTME: Pages through discover results with bounded retries and backoff
package tmdb

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/harper/cinematch/internal/models"
	"github.com/harper/cinematch/internal/util"
)

// Client talks to the TMDb v3 API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (for tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRetries sets the retry count and base delay for failed requests.
func WithRetries(max int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = max
		c.retryDelay = delay
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a TMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.themoviedb.org/3",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type genreListResponse struct {
	Genres []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

type discoverResponse struct {
	Page    int `json:"page"`
	Results []struct {
		ID               int     `json:"id"`
		Title            string  `json:"title"`
		OriginalLanguage string  `json:"original_language"`
		ReleaseDate      string  `json:"release_date"`
		GenreIDs         []int   `json:"genre_ids"`
		Overview         string  `json:"overview"`
		VoteAverage      float64 `json:"vote_average"`
	} `json:"results"`
	TotalPages int `json:"total_pages"`
}

// GenreNames fetches the TMDb genre id to name mapping.
func (c *Client) GenreNames() (map[int]string, error) {
	var resp genreListResponse
	if err := c.get("/genre/movie/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch genre list: %w", err)
	}
	names := make(map[int]string, len(resp.Genres))
	for _, g := range resp.Genres {
		names[g.ID] = g.Name
	}
	return names, nil
}

// FetchCatalog pages through popular movies and returns them as catalog
// entries. Movies without a title are skipped.
func (c *Client) FetchCatalog(pages int) ([]models.Movie, error) {
	genreNames, err := c.GenreNames()
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	for page := 1; page <= pages; page++ {
		params := url.Values{}
		params.Set("sort_by", "popularity.desc")
		params.Set("page", strconv.Itoa(page))

		var resp discoverResponse
		if err := c.get("/discover/movie", params, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch discover page %d: %w", page, err)
		}

		for _, r := range resp.Results {
			if r.Title == "" {
				continue
			}
			genres := make([]string, 0, len(r.GenreIDs))
			for _, id := range r.GenreIDs {
				if name, ok := genreNames[id]; ok {
					genres = append(genres, name)
				}
			}
			movies = append(movies, models.Movie{
				ID:       r.ID,
				Title:    r.Title,
				Year:     releaseYear(r.ReleaseDate),
				Language: r.OriginalLanguage,
				Genres:   genres,
				Overview: r.Overview,
				Rating:   r.VoteAverage,
			})
		}

		if resp.TotalPages > 0 && page >= resp.TotalPages {
			break
		}
	}

	return movies, nil
}

// get performs a GET request with retries and decodes the JSON response.
func (c *Client) get(path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		resp, err := c.httpClient.Get(reqURL)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			// Client errors won't improve on retry
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return lastErr
			}
			continue
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// releaseYear parses the year out of a TMDb release date (YYYY-MM-DD).
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
