package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRequest(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	rec := runRequest(t, RequestID(), req)

	if rec.Header().Get(headerRequestID) == "" {
		t.Error("expected a request ID to be minted")
	}
}

func TestRequestID_EchoesInbound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := runRequest(t, RequestID(), req)

	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Errorf("request ID = %q, want req-123", got)
	}
}

func TestElapsedTime_SetsHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	rec := runRequest(t, ElapsedTime(), req)

	raw := rec.Header().Get(headerElapsedTime)
	if raw == "" {
		t.Fatal("expected elapsed-time header")
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		t.Errorf("elapsed-time header %q is not a float: %v", raw, err)
	}
}

func TestOTelStatus_PassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	rec := runRequest(t, OTelStatus("station-search"), req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
