package domain

// StationRecord is one matched charging station. The station document
// itself is opaque: its schema is owned by the indexing pipeline and passed
// through untouched.
type StationRecord struct {
	ID            string         `json:"id"`
	Score         float64        `json:"score"`
	ChargeStation map[string]any `json:"charge_station"`
}

// SearchResult is the typed outcome of one search. MaxScore is 0.0 when
// the engine reports none, e.g. for an all-filter query with no scored
// clauses.
type SearchResult struct {
	Took     float64         `json:"took"`
	Total    int             `json:"total"`
	MaxScore float64         `json:"max_score"`
	Records  []StationRecord `json:"records"`
}
