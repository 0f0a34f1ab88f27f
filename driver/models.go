package driver

// SearchResponse mirrors the engine's search reply envelope.
type SearchResponse struct {
	Took float64     `json:"took"`
	Hits *SearchHits `json:"hits"`
}

// SearchHits is the hits container. MaxScore is null for all-filter
// queries; Score is null per hit for the same reason.
type SearchHits struct {
	Total    HitsTotal   `json:"total"`
	MaxScore *float64    `json:"max_score"`
	Hits     []SearchHit `json:"hits"`
}

// HitsTotal carries the matched-document count.
type HitsTotal struct {
	Value int `json:"value"`
}

// SearchHit is one raw engine hit.
type SearchHit struct {
	ID     string         `json:"_id"`
	Score  *float64       `json:"_score"`
	Source map[string]any `json:"_source"`
}
