package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	headerRequestID   = "X-Request-Id"
	headerElapsedTime = "X-Elapsed-Time"
)

// RequestID echoes the inbound request ID back to the client, minting one
// when absent.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			return next(c)
		}
	}
}

// ElapsedTime reports the request's wall-clock handling time in seconds
// through a response header.
func ElapsedTime() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				elapsed := time.Since(start).Seconds()
				c.Response().Header().Set(headerElapsedTime, strconv.FormatFloat(elapsed, 'f', -1, 64))
			})
			return next(c)
		}
	}
}

// OTelStatus wraps each request in a span and sets the span status from
// the HTTP response code. Per the OTel HTTP conventions only 5xx marks the
// span as an error; 4xx stays Unset.
func OTelStatus(serviceName string) echo.MiddlewareFunc {
	tracer := otel.Tracer(serviceName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), c.Request().Method+" "+c.Path())
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if status >= 500 {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			return err
		}
	}
}
