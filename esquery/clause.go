package esquery

import "errors"

// ErrGeoClauseConflict is returned when a filter is asked to carry both a
// geo_distance and a geo_shape clause.
var ErrGeoClauseConflict = errors.New("geo_distance and geo_shape are mutually exclusive")

// DistanceTypeArc is the engine's great-circle distance calculation.
const DistanceTypeArc = "arc"

// Filter builds a single filter-context clause: at most one of term,
// geo_distance or geo_shape. A clause is part of the wire form iff it was
// set; the two geo clauses exclude each other.
type Filter struct {
	term        map[string]any
	geoDistance map[string]any
	geoShape    map[string]any
}

// NewFilter returns an empty filter clause.
func NewFilter() *Filter {
	return &Filter{}
}

// WithTerm sets an exact-equality term clause, replacing any prior term.
func (f *Filter) WithTerm(field string, value any) *Filter {
	f.term = map[string]any{field: value}
	return f
}

// WithGeoShape sets a geo_shape clause constraining the given geo field.
//
//	"geo_shape": {
//	    "geo_address": {
//	        "shape": {"type": "envelope", "coordinates": [...]},
//	        "relation": "intersects"
//	    }
//	}
func (f *Filter) WithGeoShape(field string, shape Shape) error {
	if f.geoDistance != nil {
		return ErrGeoClauseConflict
	}
	f.geoShape = map[string]any{field: shape.ToWireForm()}
	return nil
}

// WithGeoDistance sets a geo_distance clause constraining the given geo
// field to a radius around a point.
//
//	"geo_distance": {
//	    "distance_type": "arc",
//	    "distance": "2km",
//	    "geo_address": [12.97, 77.76]
//	}
func (f *Filter) WithGeoDistance(field string, coordinates []float64, distance, distanceType string) error {
	if f.geoShape != nil {
		return ErrGeoClauseConflict
	}
	f.geoDistance = map[string]any{
		"distance_type": distanceType,
		"distance":      distance,
		field:           coordinates,
	}
	return nil
}

// ToWireForm returns whichever clauses are set.
func (f *Filter) ToWireForm() map[string]any {
	m := make(map[string]any)
	if f.term != nil {
		m["term"] = f.term
	}
	if f.geoDistance != nil {
		m["geo_distance"] = f.geoDistance
	}
	if f.geoShape != nil {
		m["geo_shape"] = f.geoShape
	}
	return m
}

// Must builds a single must-context clause. Unlike Filter, its sub-clauses
// are not mutually exclusive: match_all, match, match_phrase and
// multi_match may all be combined.
type Must struct {
	matchAll    map[string]any
	match       map[string]any
	matchPhrase map[string]any
	multiMatch  map[string]any
}

// NewMust returns an empty must clause.
func NewMust() *Must {
	return &Must{}
}

// WithMatchAll sets the always-true clause: "match_all": {}.
func (m *Must) WithMatchAll() *Must {
	if m.matchAll == nil {
		m.matchAll = map[string]any{}
	}
	return m
}

// WithMatch sets or merges a per-field match using the default field
// options with the given query text.
func (m *Must) WithMatch(field, value string) *Must {
	if m.match == nil {
		m.match = make(map[string]any)
	}
	m.match[field] = NewFieldQuery(value).ToWireForm()
	return m
}

// WithMatchPhrase sets or merges a per-field phrase match.
//
//	"match_phrase": {
//	    "title": {"query": "wind rises the", "analyzer": "standard", "boost": 1}
//	}
func (m *Must) WithMatchPhrase(field, value string) *Must {
	if m.matchPhrase == nil {
		m.matchPhrase = make(map[string]any)
	}
	m.matchPhrase[field] = map[string]any{
		"query":    value,
		"analyzer": "standard",
		"boost":    1,
	}
	return m
}

// WithMultiMatch sets a multi_match clause over the given fields. A no-op
// when fields or value is empty, so callers can pass request input through
// unconditionally.
func (m *Must) WithMultiMatch(fields []string, value string) *Must {
	if len(fields) > 0 && value != "" {
		m.multiMatch = NewMultiMatchQuery(value, fields).ToWireForm()
	}
	return m
}

// ToWireForm returns every clause that has been set. Presence is the only
// criterion: an empty body such as "match_all": {} is still emitted.
func (m *Must) ToWireForm() map[string]any {
	out := make(map[string]any)
	if m.matchAll != nil {
		out["match_all"] = m.matchAll
	}
	if m.match != nil {
		out["match"] = m.match
	}
	if m.matchPhrase != nil {
		out["match_phrase"] = m.matchPhrase
	}
	if m.multiMatch != nil {
		out["multi_match"] = m.multiMatch
	}
	return out
}
