package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stoykov15/lifeos/internal/core/domain"
	"github.com/stoykov15/lifeos/internal/core/ports"
)

const userContextKey = "current_user"

// Auth extracts the bearer token, resolves it to a user record and injects
// the record into the request context. Handlers behind this middleware can
// assume CurrentUser returns a fully resolved user, current as of this
// request (the record is never cached across requests).
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.ResolveIdentity(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Auth, or nil when absent.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
