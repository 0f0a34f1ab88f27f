// Package esquery assembles search-engine query documents clause by clause.
//
// Every value object serializes sparsely: a field holding its zero value
// (0, "", false, nil) is treated as unset and never appears in the wire
// form. The omission is decided per field with an explicit check, so the
// policy is visible in code rather than hidden behind reflection.
package esquery

// FieldQuery holds the per-field match options for a single-field match
// clause.
//
// Wire form:
//
//	"<field_name>": {
//	    "query": "field value to search for",
//	    "fuzziness": "AUTO",
//	    "fuzzy_transpositions": true,
//	    "max_expansions": 50,
//	    "operator": "AND",
//	    "minimum_should_match": 1,
//	    "analyzer": "standard"
//	}
type FieldQuery struct {
	Query               string
	Analyzer            string
	Fuzziness           string
	Operator            string
	FuzzyTranspositions bool
	MinimumShouldMatch  int
	ZeroTermsQuery      string
	Lenient             bool
	PrefixLength        int
	MaxExpansions       int
	Boost               int
}

// NewFieldQuery returns a FieldQuery with the engine's recommended
// defaults applied.
func NewFieldQuery(query string) FieldQuery {
	return FieldQuery{
		Query:               query,
		Analyzer:            "standard",
		Fuzziness:           "AUTO",
		Operator:            "AND",
		FuzzyTranspositions: true,
		MinimumShouldMatch:  1,
		ZeroTermsQuery:      "none",
		Lenient:             false,
		PrefixLength:        0,
		MaxExpansions:       50,
		Boost:               1,
	}
}

// ToWireForm returns the clause body, omitting unset fields. Note that
// explicitly supplied zero values (boost=0, minimum_should_match=0) are
// indistinguishable from unset and vanish too.
func (q FieldQuery) ToWireForm() map[string]any {
	m := make(map[string]any)
	if q.Query != "" {
		m["query"] = q.Query
	}
	if q.Analyzer != "" {
		m["analyzer"] = q.Analyzer
	}
	if q.Fuzziness != "" {
		m["fuzziness"] = q.Fuzziness
	}
	if q.Operator != "" {
		m["operator"] = q.Operator
	}
	if q.FuzzyTranspositions {
		m["fuzzy_transpositions"] = true
	}
	if q.MinimumShouldMatch != 0 {
		m["minimum_should_match"] = q.MinimumShouldMatch
	}
	if q.ZeroTermsQuery != "" {
		m["zero_terms_query"] = q.ZeroTermsQuery
	}
	if q.Lenient {
		m["lenient"] = true
	}
	if q.PrefixLength != 0 {
		m["prefix_length"] = q.PrefixLength
	}
	if q.MaxExpansions != 0 {
		m["max_expansions"] = q.MaxExpansions
	}
	if q.Boost != 0 {
		m["boost"] = q.Boost
	}
	return m
}

// MultiMatchQuery holds the options for a multi_match clause spanning
// several fields. Fields may carry per-field boost suffixes ("name^4").
//
// Wire form:
//
//	"multi_match": {
//	    "query": "wind",
//	    "fields": ["title^4", "description"],
//	    "type": "most_fields",
//	    "operator": "OR",
//	    "tie_breaker": 0.3,
//	    ...
//	}
type MultiMatchQuery struct {
	Query                           string
	Fields                          []string
	Type                            string
	Analyzer                        string
	Fuzziness                       string
	Operator                        string
	TieBreaker                      float64
	FuzzyTranspositions             bool
	MinimumShouldMatch              int
	ZeroTermsQuery                  string
	Lenient                         bool
	PrefixLength                    int
	MaxExpansions                   int
	Boost                           int
	AutoGenerateSynonymsPhraseQuery bool
}

// NewMultiMatchQuery returns a MultiMatchQuery with defaults applied.
// Unlike the single-field defaults, the operator is "OR": a multi-field
// free-text search should match on any token rather than all of them.
func NewMultiMatchQuery(query string, fields []string) MultiMatchQuery {
	return MultiMatchQuery{
		Query:                           query,
		Fields:                          fields,
		Type:                            "most_fields",
		Analyzer:                        "standard",
		Fuzziness:                       "AUTO",
		Operator:                        "OR",
		TieBreaker:                      0.0,
		FuzzyTranspositions:             true,
		MinimumShouldMatch:              1,
		ZeroTermsQuery:                  "none",
		Lenient:                         false,
		PrefixLength:                    0,
		MaxExpansions:                   50,
		Boost:                           1,
		AutoGenerateSynonymsPhraseQuery: true,
	}
}

// ToWireForm returns the clause body, omitting unset fields.
func (q MultiMatchQuery) ToWireForm() map[string]any {
	m := make(map[string]any)
	if q.Query != "" {
		m["query"] = q.Query
	}
	if len(q.Fields) > 0 {
		m["fields"] = q.Fields
	}
	if q.Type != "" {
		m["type"] = q.Type
	}
	if q.Analyzer != "" {
		m["analyzer"] = q.Analyzer
	}
	if q.Fuzziness != "" {
		m["fuzziness"] = q.Fuzziness
	}
	if q.Operator != "" {
		m["operator"] = q.Operator
	}
	if q.TieBreaker != 0 {
		m["tie_breaker"] = q.TieBreaker
	}
	if q.FuzzyTranspositions {
		m["fuzzy_transpositions"] = true
	}
	if q.MinimumShouldMatch != 0 {
		m["minimum_should_match"] = q.MinimumShouldMatch
	}
	if q.ZeroTermsQuery != "" {
		m["zero_terms_query"] = q.ZeroTermsQuery
	}
	if q.Lenient {
		m["lenient"] = true
	}
	if q.PrefixLength != 0 {
		m["prefix_length"] = q.PrefixLength
	}
	if q.MaxExpansions != 0 {
		m["max_expansions"] = q.MaxExpansions
	}
	if q.Boost != 0 {
		m["boost"] = q.Boost
	}
	if q.AutoGenerateSynonymsPhraseQuery {
		m["auto_generate_synonyms_phrase_query"] = true
	}
	return m
}

// Shape describes the geometry of a geo_shape filter.
//
// Wire form (nested under the owning field key, always emitted in full):
//
//	"shape": {
//	    "type": "envelope",
//	    "coordinates": [[12.97, 77.77], [12.98, 77.76]],
//	    "relation": "intersects"
//	}
type Shape struct {
	Type        string
	Coordinates [][]float64
	Relation    string
}

// NewShape returns an envelope Shape, the only geometry the translation
// rules currently emit.
func NewShape(coordinates [][]float64, relation string) Shape {
	return Shape{
		Type:        "envelope",
		Coordinates: coordinates,
		Relation:    relation,
	}
}

// ToWireForm wraps the geometry under the "shape" key. The wrapper is not
// subject to sparse omission: it sits inside the owning field key, so an
// empty shape is meaningless anyway.
func (s Shape) ToWireForm() map[string]any {
	return map[string]any{
		"shape": map[string]any{
			"type":        s.Type,
			"coordinates": s.Coordinates,
			"relation":    s.Relation,
		},
	}
}
