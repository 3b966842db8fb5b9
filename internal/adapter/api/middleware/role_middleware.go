package middleware

import (
	"net/http"

	"ewastehub/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// LoadRole resolves the authenticated user's role into the request context so
// handlers can thread the full actor into the service layer.
func (m *RoleMiddleware) LoadRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve user role")
		}

		c.Set("role", user.Role)

		return next(c)
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
func (m *RoleMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			role, ok := c.Get("role").(string)
			if !ok {
				user, err := m.userRepo.GetByID(c.Request().Context(), uid)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve user role")
				}
				role = user.Role
				c.Set("role", role)
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges for this action")
		}
	}
}
