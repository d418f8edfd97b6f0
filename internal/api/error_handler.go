package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors and surfaces their message with a 500.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers map most domain errors inline; this handler covers errors escaping
// from middleware and anything a handler chose not to translate.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, "Unauthorized"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrDishNotFound):
		return http.StatusNotFound, "dish not found"
	case errors.Is(err, domain.ErrTableNotFound):
		return http.StatusNotFound, "table not found"
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrTableNumberTaken),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidTableNumber),
		errors.Is(err, domain.ErrInvalidSeatCapacity):
		return http.StatusBadRequest, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
