package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"station-search/domain"
	"station-search/usecase"
)

const (
	// EventTypeSearchRequested carries a search request as payload.
	EventTypeSearchRequested = "search.requested"
	// EventTypeSearchCompleted carries a search result as payload.
	EventTypeSearchCompleted = "search.completed"
	// EventTypeSearchFailed carries the error envelope as payload.
	EventTypeSearchFailed = "search.failed"
)

// ResultPublisher publishes reply events.
type ResultPublisher interface {
	Publish(ctx context.Context, values map[string]any) error
}

// RedisResultPublisher publishes replies to a Redis Stream via XADD.
type RedisResultPublisher struct {
	client    *redis.Client
	streamKey string
}

// NewRedisResultPublisher creates a publisher for the given reply stream.
func NewRedisResultPublisher(client *redis.Client, streamKey string) *RedisResultPublisher {
	return &RedisResultPublisher{client: client, streamKey: streamKey}
}

func (p *RedisResultPublisher) Publish(ctx context.Context, values map[string]any) error {
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamKey,
		Values: values,
	}).Err()
}

// errorPayload mirrors the transport error envelope of the HTTP surface.
type errorPayload struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	DetailError string `json:"detail_error,omitempty"`
}

// SearchEventHandler executes search-request events and publishes the
// outcome. Validation and domain failures are terminal: the error envelope
// is published and the message is acknowledged rather than retried.
type SearchEventHandler struct {
	searchUsecase *usecase.SearchStationsUsecase
	publisher     ResultPublisher
	logger        *slog.Logger
}

// NewSearchEventHandler creates the handler.
func NewSearchEventHandler(searchUsecase *usecase.SearchStationsUsecase, publisher ResultPublisher, logger *slog.Logger) *SearchEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchEventHandler{
		searchUsecase: searchUsecase,
		publisher:     publisher,
		logger:        logger,
	}
}

// HandleEvent processes a single event. Unknown event types are skipped.
func (h *SearchEventHandler) HandleEvent(ctx context.Context, event Event) error {
	if event.EventType != EventTypeSearchRequested {
		h.logger.Debug("skipping event", "event_type", event.EventType)
		return nil
	}

	req := domain.NewSearchRequest()
	if err := json.Unmarshal(event.Payload, req); err != nil {
		return h.publishError(ctx, event, domain.NewInvalidRequest("invalid event payload: "+err.Error()))
	}

	if err := req.Validate(); err != nil {
		return h.publishError(ctx, event, err)
	}

	result, err := h.searchUsecase.Search(ctx, req)
	if err != nil {
		return h.publishError(ctx, event, err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	h.logger.Info("search event processed",
		"event_id", event.EventID,
		"total", result.Total,
		"took", result.Took,
	)

	return h.publisher.Publish(ctx, map[string]any{
		"event_id":   event.EventID,
		"event_type": EventTypeSearchCompleted,
		"payload":    string(raw),
	})
}

func (h *SearchEventHandler) publishError(ctx context.Context, event Event, err error) error {
	var se *domain.SearchError
	if !errors.As(err, &se) {
		se = domain.NewInternalSearchError("internal server error", err.Error())
	}

	raw, merr := json.Marshal(errorPayload{
		Code:        se.Code,
		Message:     se.Message,
		DetailError: se.DetailError,
	})
	if merr != nil {
		return merr
	}

	h.logger.Error("search event failed",
		"event_id", event.EventID,
		"code", se.Code,
		"message", se.Message,
	)

	return h.publisher.Publish(ctx, map[string]any{
		"event_id":   event.EventID,
		"event_type": EventTypeSearchFailed,
		"payload":    string(raw),
	})
}
