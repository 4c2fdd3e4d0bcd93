package middleware

import (
	"strings"

	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimit throttles a route per value of the named path parameter.
// Keys look like "<scope>:<PARAM>" so different routes keep separate windows.
func RateLimit(limiter service.RateLimiter, scope, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := scope + ":" + strings.ToUpper(strings.TrimSpace(c.Param(param)))
			if !limiter.Allow(c.Request().Context(), key) {
				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
