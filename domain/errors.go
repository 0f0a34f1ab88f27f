package domain

// SearchError is a domain failure carrying the transport status code it
// maps to at the API boundary.
type SearchError struct {
	Code        int
	Message     string
	DetailError string
}

func (e *SearchError) Error() string {
	if e.DetailError != "" {
		return e.Message + ": " + e.DetailError
	}
	return e.Message
}

// NewInvalidRequest reports a request that fails the service's own
// validation (missing mandatory criteria, out-of-range coordinates, nil
// body).
func NewInvalidRequest(message string) *SearchError {
	return &SearchError{Code: 400, Message: message}
}

// NewNotFound reports an engine reply with no hits container.
func NewNotFound(message string) *SearchError {
	return &SearchError{Code: 404, Message: message}
}

// NewInternalSearchError wraps an engine-client failure of any kind,
// keeping the underlying message as detail.
func NewInternalSearchError(message, detail string) *SearchError {
	return &SearchError{Code: 500, Message: message, DetailError: detail}
}

// SearchEngineError is the gateway-level wrap around a raw driver failure.
type SearchEngineError struct {
	Op  string
	Err string
}

func (e *SearchEngineError) Error() string {
	return e.Op + ": " + e.Err
}
