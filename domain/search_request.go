package domain

const (
	// DefaultLimit is the page size applied when the request leaves it unset.
	DefaultLimit = 100
	// DefaultProximityKm is the geo radius applied when the request leaves it unset.
	DefaultProximityKm = 2
)

// SearchBy carries the optional structured criteria of a station search.
// An unset field means "do not filter on this attribute".
type SearchBy struct {
	Text             string   `json:"text"`
	Pincode          string   `json:"pincode"`
	Name             string   `json:"name"`
	Area             string   `json:"area"`
	State            string   `json:"state"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	ChargerPointType string   `json:"charger_point_type"`
	PowerCapacity    string   `json:"power_capacity"`
	ConnectorStatus  string   `json:"connector_status"`
	AvgRating        *float64 `json:"avg_rating"`
}

// IsEmpty reports whether no criterion is set at all.
func (s *SearchBy) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Text == "" &&
		s.Pincode == "" &&
		s.Name == "" &&
		s.Area == "" &&
		s.State == "" &&
		s.City == "" &&
		s.Country == "" &&
		s.ChargerPointType == "" &&
		s.PowerCapacity == "" &&
		s.ConnectorStatus == "" &&
		s.AvgRating == nil
}

// SearchRequest is one charging-station search. Location, when present, is
// [latitude, longitude]; ProximityInKm only applies alongside it.
type SearchRequest struct {
	Offset        int       `json:"offset"`
	Limit         int       `json:"limit"`
	Location      []float64 `json:"location"`
	ProximityInKm int       `json:"proximity_in_km"`
	SearchBy      *SearchBy `json:"search_by"`
}

// NewSearchRequest returns a request with defaults applied. Decoding a JSON
// body over it keeps the defaults for absent keys and lets explicit values,
// zero included, override them.
func NewSearchRequest() *SearchRequest {
	return &SearchRequest{
		Offset:        0,
		Limit:         DefaultLimit,
		ProximityInKm: DefaultProximityKm,
		SearchBy:      &SearchBy{},
	}
}

// Validate is the pre-check the API surface runs before dispatching a
// search: at least one of location / search_by must be populated, and
// coordinates must be in range.
func (r *SearchRequest) Validate() error {
	if r.Location == nil && r.SearchBy.IsEmpty() {
		return NewInvalidRequest("either location or search_by criteria is mandatory")
	}
	if r.Location != nil {
		if len(r.Location) != 2 {
			return NewInvalidRequest("location must be a [latitude, longitude] pair")
		}
		lat, lon := r.Location[0], r.Location[1]
		if lat <= -90 || lat >= 90 {
			return NewInvalidRequest("invalid latitude")
		}
		if lon <= -180 || lon >= 180 {
			return NewInvalidRequest("invalid longitude")
		}
	}
	if r.Offset < 0 {
		return NewInvalidRequest("offset must not be negative")
	}
	if r.Limit < 0 {
		return NewInvalidRequest("limit must not be negative")
	}
	return nil
}
