package auth

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/pkg/respond"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityHeader is the channel the identity blob travels on.
const IdentityHeader = "user"

// RequireIdentity parses the identity blob from the request header and
// stores the result in the request context. Requests without a blob are
// rejected with 401, malformed blobs with 400, before any handler runs.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := ParseIdentity(c.Request().Header.Get(IdentityHeader))
			if err != nil {
				return respond.Error(c, err)
			}

			ctx := context.WithValue(c.Request().Context(), identityKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// FromContext returns the Identity stashed by RequireIdentity, or nil when
// the request never passed through it.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}

// WithIdentity returns a context carrying the given identity. Used by tests
// and by callers invoking services outside the HTTP stack.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
