// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Every error becomes the JSON error envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("error", err.Error()),
				slog.String("stack", stackOf(err)),
			)
		}
		_ = response.RenderAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, httpKind(httpErr.Code), httpMessage(httpErr), nil)

		return
	}

	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("stack", stackOf(err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.KindInternal, domainerrors.ErrInternal.Message(), nil)
}

// httpKind maps echo's own errors (unknown route, bad method, oversized body) onto the error kinds.
func httpKind(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return domainerrors.KindUnauthenticated
	case http.StatusForbidden:
		return domainerrors.KindForbidden
	case http.StatusNotFound:
		return domainerrors.KindNotFound
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	}
	if status >= http.StatusInternalServerError {
		return domainerrors.KindInternal
	}

	return domainerrors.KindInvalidInput
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}

// stackOf renders the pkg/errors stack trace for the server log.
func stackOf(err error) string {
	return fmt.Sprintf("%+v", err)
}
