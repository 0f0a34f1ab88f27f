package domain

// EngineResponse is the subset of the search engine's reply the service
// consumes. Hits is nil when the engine returned no hits container at all,
// which is distinct from a container holding zero hits.
type EngineResponse struct {
	Took float64
	Hits *EngineHits
}

// EngineHits is the engine's hits envelope.
type EngineHits struct {
	Total    int
	MaxScore *float64
	Hits     []EngineHit
}

// EngineHit is one raw hit: identifier, relevance score and the opaque
// source document.
type EngineHit struct {
	ID     string
	Score  float64
	Source map[string]any
}
