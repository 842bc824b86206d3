package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carebook/carebook/internal/platform/auth"
)

// AuditEntry is one record in the audit trail: who did what, to which
// endpoint, and how it turned out.
type AuditEntry struct {
	RequestID string
	Actor     string
	Role      string
	Method    string
	Path      string
	Status    int
	At        time.Time
}

// Audit returns middleware that writes an audit record for every mutating
// request (POST, PUT, PATCH, DELETE). Reads are left to the request logger.
// The actor is taken from the identity on the request context when present;
// requests rejected before identity parsing are still recorded, without one.
func Audit(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return next(c)
			}

			err := next(c)

			entry := AuditEntry{
				Method: c.Request().Method,
				Path:   c.Request().URL.Path,
				Status: c.Response().Status,
				At:     time.Now().UTC(),
			}
			if rid, ok := c.Get("request_id").(string); ok {
				entry.RequestID = rid
			}
			if id := auth.FromContext(c.Request().Context()); id != nil {
				entry.Actor = id.Username
				entry.Role = string(id.Role)
			}

			logger.Info().
				Str("request_id", entry.RequestID).
				Str("actor", entry.Actor).
				Str("role", entry.Role).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Int("status", entry.Status).
				Time("at", entry.At).
				Msg("audit")

			return err
		}
	}
}
