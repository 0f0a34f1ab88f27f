package port

import (
	"context"

	"station-search/domain"
)

// SearchEngine executes an assembled query document against one index. The
// implementation must be safe for concurrent in-flight searches.
type SearchEngine interface {
	Search(ctx context.Context, index string, body string) (*domain.EngineResponse, error)
}
