// ABOUTME: Movie represents one immutable catalog entry
// ABOUTME: Owned by the catalog index, loaded once at startup
package models

// Movie is a single entry in the loaded catalog. Movies are immutable after
// load; the catalog index is the only owner.
type Movie struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Language string   `json:"language"`
	Genres   []string `json:"genres"`
	Overview string   `json:"overview"`
	Rating   float64  `json:"rating"`
}
