package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/platform/apperr"
	"github.com/carebook/carebook/pkg/respond"
)

// Allow is the role gate: it permits the identity when its role is in the
// allowed set and returns AccessDenied otherwise. Pure function, no side
// effects; the error names the attempted role and the allowed set.
func Allow(id *Identity, roles ...Role) error {
	if id != nil {
		for _, r := range roles {
			if id.Role == r {
				return nil
			}
		}
	}

	attempted := Role("none")
	if id != nil {
		attempted = id.Role
	}
	return apperr.New(apperr.AccessDenied,
		"Access denied: role %s is not allowed (requires %s)", attempted, joinRoles(roles))
}

// RequireRole returns middleware restricting a route to the given roles.
// It must run after RequireIdentity.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := Allow(FromContext(c.Request().Context()), roles...); err != nil {
				return respond.Error(c, err)
			}
			return next(c)
		}
	}
}

func joinRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
