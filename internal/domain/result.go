package domain

// SearchResult is one ranked hit. Similarity is cosine similarity scaled to
// [0, 100] and rounded to one decimal place.
type SearchResult struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Similarity float64        `json:"similarity"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
