package usecase

import (
	"fmt"
	"strings"

	"station-search/domain"
	"station-search/esquery"
)

// multiMatchFields are the indexed document fields a free-text search
// spans.
var multiMatchFields = []string{
	"name",
	"address_line",
	"town",
	"state",
	"country",
	"total_charger_data.charger_point_type",
	"total_charger_data.connectors.status",
}

// termFilter builds an exact-match filter on one document field. Term
// values are lowercased to match the keyword normalization of the index.
// Absent values produce no clause at all.
func termFilter(field, value string) *esquery.Filter {
	if value == "" {
		return nil
	}
	return esquery.NewFilter().WithTerm(field, strings.ToLower(value))
}

// ratingFilter builds the average-rating filter. The value is numeric, so
// no case transform applies.
func ratingFilter(rating *float64) *esquery.Filter {
	if rating == nil {
		return nil
	}
	return esquery.NewFilter().WithTerm("rating.avg_rating", *rating)
}

// textClause builds the free-text multi_match clause.
func textClause(text string) *esquery.Must {
	if text == "" {
		return nil
	}
	return esquery.NewMust().WithMultiMatch(multiMatchFields, text)
}

// geoFilter builds the proximity filter around the requested location.
func geoFilter(req *domain.SearchRequest) (*esquery.Filter, error) {
	if req.Location == nil {
		return nil, nil
	}
	f := esquery.NewFilter()
	err := f.WithGeoDistance(
		"geo_address",
		req.Location,
		fmt.Sprintf("%dkm", req.ProximityInKm),
		esquery.DistanceTypeArc,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// BuildQuery translates a search request into the engine's query document.
// Deterministic and side-effect free: each populated criterion contributes
// exactly one clause, absent criteria contribute none, and the filter
// order is fixed with the geo clause last.
func BuildQuery(req *domain.SearchRequest) (string, error) {
	geo, err := geoFilter(req)
	if err != nil {
		return "", err
	}

	by := req.SearchBy
	if by == nil {
		by = &domain.SearchBy{}
	}

	boolQuery := esquery.NewBool().
		AddMust(textClause(by.Text)).
		AddFilter(termFilter("name", by.Name)).
		AddFilter(termFilter("address_line", by.Area)).
		AddFilter(termFilter("country", by.Country)).
		AddFilter(termFilter("state", by.State)).
		AddFilter(termFilter("town", by.City)).
		AddFilter(ratingFilter(by.AvgRating)).
		AddFilter(termFilter("total_charger_data.charger_point_type", by.ChargerPointType)).
		AddFilter(termFilter("postal_code", by.Pincode)).
		AddFilter(termFilter("total_charger_data.power_capacity", by.PowerCapacity)).
		AddFilter(termFilter("total_charger_data.connectors.status", by.ConnectorStatus)).
		AddFilter(geo)

	return esquery.NewBuilder(req.Offset, req.Limit).
		AddQuery(esquery.NewQuery().AddBool(boolQuery)).
		Build()
}
