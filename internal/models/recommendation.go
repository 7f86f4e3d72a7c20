// ABOUTME: Recommendation and result structures returned by the engine
// ABOUTME: Carries the per-candidate similarity breakdown and rank
package models

// Recommendation is one ranked candidate with its similarity breakdown.
// All three similarity fields lie in [0,1]; Combined is the weighted sum of
// the other two after weight renormalization.
type Recommendation struct {
	Movie       Movie   `json:"movie"`
	Combined    float64 `json:"similarity"`
	GenreSim    float64 `json:"genre_similarity"`
	OverviewSim float64 `json:"overview_similarity"`
	Rank        int     `json:"rank"`
}

// Result is the successful output of a recommendation request. An empty
// Recommendations slice with a non-empty Message is the valid "no results"
// outcome, distinct from a matching failure.
type Result struct {
	Searched        Movie            `json:"searched_movie"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalCandidates int              `json:"total_found"`
	Message         string           `json:"message,omitempty"`
}
