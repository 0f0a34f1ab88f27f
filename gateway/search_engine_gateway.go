package gateway

import (
	"context"

	"station-search/domain"
	"station-search/driver"
)

// SearchDriver is the raw engine access the gateway mediates.
type SearchDriver interface {
	Search(ctx context.Context, index, body string) (*driver.SearchResponse, error)
}

// SearchEngineGateway adapts the engine driver to the domain: driver reply
// types become domain types and driver failures become SearchEngineError.
type SearchEngineGateway struct {
	driver SearchDriver
}

// NewSearchEngineGateway creates a gateway over the given driver.
func NewSearchEngineGateway(d SearchDriver) *SearchEngineGateway {
	return &SearchEngineGateway{driver: d}
}

// Search executes the query and converts the reply. A hit with a null
// score (filter-only queries) maps to 0.0.
func (g *SearchEngineGateway) Search(ctx context.Context, index, body string) (*domain.EngineResponse, error) {
	res, err := g.driver.Search(ctx, index, body)
	if err != nil {
		return nil, &domain.SearchEngineError{Op: "Search", Err: err.Error()}
	}

	out := &domain.EngineResponse{Took: res.Took}
	if res.Hits == nil {
		return out, nil
	}

	hits := &domain.EngineHits{
		Total:    res.Hits.Total.Value,
		MaxScore: res.Hits.MaxScore,
		Hits:     make([]domain.EngineHit, 0, len(res.Hits.Hits)),
	}
	for _, h := range res.Hits.Hits {
		score := 0.0
		if h.Score != nil {
			score = *h.Score
		}
		hits.Hits = append(hits.Hits, domain.EngineHit{
			ID:     h.ID,
			Score:  score,
			Source: h.Source,
		})
	}
	out.Hits = hits
	return out, nil
}
