package esquery

import "encoding/json"

// Bool aggregates the four boolean-query slots. The translation rules only
// populate must and filter today; should and must_not are kept so the
// composer covers the engine's full bool grammar.
type Bool struct {
	must    []map[string]any
	should  []map[string]any
	mustNot []map[string]any
	filter  []map[string]any
}

// NewBool returns an empty boolean composer.
func NewBool() *Bool {
	return &Bool{}
}

// AddMust appends the clause's wire form to the must list. Nil clauses are
// skipped so callers can chain conditional construction helpers directly.
func (b *Bool) AddMust(m *Must) *Bool {
	if m != nil {
		b.must = append(b.must, m.ToWireForm())
	}
	return b
}

// AddShould appends the clause's wire form to the should list.
func (b *Bool) AddShould(m *Must) *Bool {
	if m != nil {
		b.should = append(b.should, m.ToWireForm())
	}
	return b
}

// AddMustNot appends the clause's wire form to the must_not list.
func (b *Bool) AddMustNot(m *Must) *Bool {
	if m != nil {
		b.mustNot = append(b.mustNot, m.ToWireForm())
	}
	return b
}

// AddFilter appends the clause's wire form to the filter list, preserving
// insertion order.
func (b *Bool) AddFilter(f *Filter) *Bool {
	if f != nil {
		b.filter = append(b.filter, f.ToWireForm())
	}
	return b
}

// ToWireForm returns only the non-empty slots.
func (b *Bool) ToWireForm() map[string]any {
	m := make(map[string]any)
	if len(b.must) > 0 {
		m["must"] = b.must
	}
	if len(b.should) > 0 {
		m["should"] = b.should
	}
	if len(b.mustNot) > 0 {
		m["must_not"] = b.mustNot
	}
	if len(b.filter) > 0 {
		m["filter"] = b.filter
	}
	return m
}

// Query is the root query object: either a boolean query or a bare
// single-field match. The last non-empty slot set wins.
type Query struct {
	boolQuery map[string]any
	match     map[string]any
}

// NewQuery returns an empty root query.
func NewQuery() *Query {
	return &Query{}
}

// AddBool sets the bool slot from the composer's wire form.
func (q *Query) AddBool(b *Bool) *Query {
	if b != nil {
		q.boolQuery = b.ToWireForm()
	}
	return q
}

// AddMatch sets a bare match slot: {"match": {field: {...}}}.
func (q *Query) AddMatch(field, value string) *Query {
	if field != "" {
		q.match = map[string]any{field: NewFieldQuery(value).ToWireForm()}
	}
	return q
}

// ToWireForm returns whichever slot is non-empty.
func (q *Query) ToWireForm() map[string]any {
	m := make(map[string]any)
	if len(q.boolQuery) > 0 {
		m["bool"] = q.boolQuery
	}
	if len(q.match) > 0 {
		m["match"] = q.match
	}
	return m
}

// Builder assembles the final query document: pagination plus the root
// query, serialized to the engine's wire format.
type Builder struct {
	from  int
	size  int
	query map[string]any
}

// NewBuilder returns a Builder with the given pagination window. The
// offset is emitted as "from" and the limit as "size".
func NewBuilder(from, size int) *Builder {
	return &Builder{from: from, size: size}
}

// AddQuery attaches the root query's wire form.
func (b *Builder) AddQuery(q *Query) *Builder {
	if q != nil {
		b.query = q.ToWireForm()
	}
	return b
}

// Build serializes the document. The three top-level keys are always
// present, pagination included, even at their zero values.
func (b *Builder) Build() (string, error) {
	raw, err := json.Marshal(map[string]any{
		"from":  b.from,
		"size":  b.size,
		"query": b.query,
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
