package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Middleware parses the Bearer session token and stores the fabricated
// identity on the request context. Requests without a token are rejected;
// route-level role checks happen in RequireRole.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			c.SetRequest(c.Request().WithContext(withIdentity(
				c.Request().Context(), claims.Subject, claims.Name, claims.Role)))
			return next(c)
		}
	}
}

// DevMiddleware is the permissive development-mode variant: requests
// without a token act as an admin so every dashboard is reachable, while
// a supplied token is still honored.
func DevMiddleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				c.SetRequest(c.Request().WithContext(withIdentity(
					c.Request().Context(), "dev-user", "Dev User", RoleAdmin)))
				return next(c)
			}
			claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			c.SetRequest(c.Request().WithContext(withIdentity(
				c.Request().Context(), claims.Subject, claims.Name, claims.Role)))
			return next(c)
		}
	}
}

// RequireRole gates a route group to the named dashboards. Admin passes
// every gate.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if role == RoleAdmin {
				return next(c)
			}
			for _, required := range roles {
				if role == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

func withIdentity(ctx context.Context, id, name, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserNameKey, name)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}
