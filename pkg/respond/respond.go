// Package respond renders the API's response envelope. Every body carries a
// boolean success flag plus a human-readable message, so callers never have
// to infer the outcome from the HTTP status alone.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/platform/apperr"
)

// Message sends a success envelope with only a message.
func Message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": msg,
	})
}

// Data sends a success envelope with additional payload fields.
func Data(c echo.Context, fields map[string]interface{}) error {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

// Error sends a failure envelope at the status mapped from the error's kind.
func Error(c echo.Context, err error) error {
	return c.JSON(StatusOf(err), map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

// StatusOf maps an error taxonomy kind to its HTTP status code.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.MissingIdentity:
		return http.StatusUnauthorized
	case apperr.InvalidIdentity, apperr.Validation:
		return http.StatusBadRequest
	case apperr.AccessDenied:
		return http.StatusForbidden
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is the echo HTTPErrorHandler; it guarantees the envelope on
// error paths that never reach a handler (middleware failures, 404s).
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusOf(err)
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}

		_ = c.JSON(status, map[string]interface{}{
			"success": false,
			"message": msg,
		})
	}
}
