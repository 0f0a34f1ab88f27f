package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-search/domain"
)

// decodeQuery unmarshals a built query body for structural assertions.
func decodeQuery(t *testing.T, body string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	return doc
}

func boolClause(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	query, ok := doc["query"].(map[string]any)
	require.True(t, ok, "missing query object")
	b, ok := query["bool"].(map[string]any)
	require.True(t, ok, "missing bool object")
	return b
}

func TestBuildQuery_PincodeAreaAndLocation(t *testing.T) {
	req := domain.NewSearchRequest()
	req.Location = []float64{12.3355, -77.4355}
	req.SearchBy = &domain.SearchBy{Pincode: "560067", Area: "Channasandra"}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	filters, ok := b["filter"].([]any)
	require.True(t, ok)

	want := []any{
		map[string]any{"term": map[string]any{"address_line": "channasandra"}},
		map[string]any{"term": map[string]any{"postal_code": "560067"}},
		map[string]any{"geo_distance": map[string]any{
			"distance_type": "arc",
			"distance":      "2km",
			"geo_address":   []any{12.3355, -77.4355},
		}},
	}
	assert.Equal(t, want, filters)
}

func TestBuildQuery_AbsentTextProducesNoMust(t *testing.T) {
	req := domain.NewSearchRequest()
	req.SearchBy = &domain.SearchBy{Pincode: "560067"}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	assert.NotContains(t, b, "must")
}

func TestBuildQuery_TextSpansAllSearchFields(t *testing.T) {
	req := domain.NewSearchRequest()
	req.SearchBy = &domain.SearchBy{Text: "fast charger"}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	must, ok := b["must"].([]any)
	require.True(t, ok)
	require.Len(t, must, 1)

	mm, ok := must[0].(map[string]any)["multi_match"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fast charger", mm["query"])
	assert.Equal(t, []any{
		"name",
		"address_line",
		"town",
		"state",
		"country",
		"total_charger_data.charger_point_type",
		"total_charger_data.connectors.status",
	}, mm["fields"])
	assert.Equal(t, "most_fields", mm["type"])
}

func TestBuildQuery_TermValuesLowercased(t *testing.T) {
	req := domain.NewSearchRequest()
	req.SearchBy = &domain.SearchBy{
		Name:             "Pixbit",
		City:             "Calicut",
		State:            "Kerala",
		Country:          "India",
		ChargerPointType: "AC",
		PowerCapacity:    "240VAC, 15A",
		ConnectorStatus:  "AVAILABLE",
	}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	filters, ok := b["filter"].([]any)
	require.True(t, ok)

	want := []any{
		map[string]any{"term": map[string]any{"name": "pixbit"}},
		map[string]any{"term": map[string]any{"country": "india"}},
		map[string]any{"term": map[string]any{"state": "kerala"}},
		map[string]any{"term": map[string]any{"town": "calicut"}},
		map[string]any{"term": map[string]any{"total_charger_data.charger_point_type": "ac"}},
		map[string]any{"term": map[string]any{"total_charger_data.power_capacity": "240vac, 15a"}},
		map[string]any{"term": map[string]any{"total_charger_data.connectors.status": "available"}},
	}
	assert.Equal(t, want, filters)
}

func TestBuildQuery_AvgRatingStaysNumeric(t *testing.T) {
	rating := 4.5
	req := domain.NewSearchRequest()
	req.SearchBy = &domain.SearchBy{AvgRating: &rating}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	filters, ok := b["filter"].([]any)
	require.True(t, ok)
	require.Len(t, filters, 1)

	term, ok := filters[0].(map[string]any)["term"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4.5, term["rating.avg_rating"])
}

func TestBuildQuery_ProximityRadiusFormatting(t *testing.T) {
	req := domain.NewSearchRequest()
	req.Location = []float64{8.5613, 76.9119}
	req.ProximityInKm = 15

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	filters, ok := b["filter"].([]any)
	require.True(t, ok)
	require.Len(t, filters, 1)

	geo, ok := filters[0].(map[string]any)["geo_distance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "15km", geo["distance"])
	assert.Equal(t, "arc", geo["distance_type"])
}

func TestBuildQuery_OffsetLimitPassthrough(t *testing.T) {
	req := domain.NewSearchRequest()
	req.Offset = 40
	req.Limit = 20
	req.SearchBy = &domain.SearchBy{Pincode: "673501"}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	doc := decodeQuery(t, body)
	assert.Equal(t, float64(40), doc["from"])
	assert.Equal(t, float64(20), doc["size"])
}

func TestBuildQuery_NilSearchBy(t *testing.T) {
	req := domain.NewSearchRequest()
	req.SearchBy = nil
	req.Location = []float64{12.97, 77.76}

	body, err := BuildQuery(req)
	require.NoError(t, err)

	b := boolClause(t, decodeQuery(t, body))
	filters, ok := b["filter"].([]any)
	require.True(t, ok)
	assert.Len(t, filters, 1)
}
