package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"station-search/domain"
	"station-search/logger"
	"station-search/usecase"
)

// Handler contains the HTTP handlers of the search API.
type Handler struct {
	searchUsecase *usecase.SearchStationsUsecase
}

// NewHandler creates a new Handler.
func NewHandler(searchUsecase *usecase.SearchStationsUsecase) *Handler {
	return &Handler{searchUsecase: searchUsecase}
}

// ErrorResponse is the transport error envelope.
type ErrorResponse struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	DetailError string `json:"detail_error,omitempty"`
}

// SearchStations handles POST /v1/search: a full search request body with
// structured criteria, free text and/or a location.
func (h *Handler) SearchStations(c echo.Context) error {
	req := domain.NewSearchRequest()
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:        http.StatusBadRequest,
			Message:     "invalid input",
			DetailError: err.Error(),
		})
	}
	return h.search(c, req)
}

// SearchNearby handles GET /v1/search?lat=&long=: a pure proximity search
// around the given coordinates with the default radius.
func (h *Handler) SearchNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "query parameter lat must be a number",
		})
	}
	long, err := strconv.ParseFloat(c.QueryParam("long"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "query parameter long must be a number",
		})
	}

	req := domain.NewSearchRequest()
	req.Location = []float64{lat, long}
	return h.search(c, req)
}

func (h *Handler) search(c echo.Context, req *domain.SearchRequest) error {
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	result, err := h.searchUsecase.Search(c.Request().Context(), req)
	if err != nil {
		logger.Logger.Error("search failed", "err", err)
		return writeError(c, err)
	}

	logger.Logger.Info("search ok", "took", result.Took, "total", result.Total)
	return c.JSON(http.StatusOK, result)
}

// writeError maps a domain error to the transport envelope. Anything
// outside the domain taxonomy is reported as a plain 500 without leaking
// internals beyond the message.
func writeError(c echo.Context, err error) error {
	var se *domain.SearchError
	if errors.As(err, &se) {
		return c.JSON(se.Code, ErrorResponse{
			Code:        se.Code,
			Message:     se.Message,
			DetailError: se.DetailError,
		})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:        http.StatusInternalServerError,
		Message:     "internal server error",
		DetailError: err.Error(),
	})
}
