package usecase

import (
	"context"

	"station-search/domain"
	"station-search/port"
)

// DefaultIndexName is the charging-station document index.
const DefaultIndexName = "charging_stations"

// SearchStationsUsecase owns the query-build-and-execute pipeline: it
// translates the request, dispatches it through the engine port and maps
// raw hits into typed records.
type SearchStationsUsecase struct {
	searchEngine port.SearchEngine
	index        string
}

// NewSearchStationsUsecase creates the usecase bound to one index. An
// empty index name falls back to DefaultIndexName.
func NewSearchStationsUsecase(searchEngine port.SearchEngine, index string) *SearchStationsUsecase {
	if index == "" {
		index = DefaultIndexName
	}
	return &SearchStationsUsecase{
		searchEngine: searchEngine,
		index:        index,
	}
}

// Search runs one station search. Failures are classified into the domain
// taxonomy: nil request → 400, engine failure of any kind → 500 with the
// underlying message as detail, missing hits container → 404. A hits
// container with zero hits is a valid empty result, not a 404.
func (u *SearchStationsUsecase) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResult, error) {
	if req == nil {
		return nil, domain.NewInvalidRequest("search request body cannot be null")
	}

	body, err := BuildQuery(req)
	if err != nil {
		return nil, domain.NewInternalSearchError("failed to build search query", err.Error())
	}

	res, err := u.searchEngine.Search(ctx, u.index, body)
	if err != nil {
		return nil, domain.NewInternalSearchError("internal server error while searching", err.Error())
	}

	if res.Hits == nil {
		return nil, domain.NewNotFound("no records found for filter criteria")
	}

	records := make([]domain.StationRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		records = append(records, domain.StationRecord{
			ID:            hit.ID,
			Score:         hit.Score,
			ChargeStation: hit.Source,
		})
	}

	maxScore := 0.0
	if res.Hits.MaxScore != nil {
		maxScore = *res.Hits.MaxScore
	}

	return &domain.SearchResult{
		Took:     res.Took,
		Total:    res.Hits.Total,
		MaxScore: maxScore,
		Records:  records,
	}, nil
}
