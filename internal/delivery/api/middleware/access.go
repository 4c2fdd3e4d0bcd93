package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"peeko/config"
	deliverycontext "peeko/internal/delivery/context"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// HeaderAPIKey carries the device shared secret.
	HeaderAPIKey = "X-API-Key"

	// HeaderSecFetchSite is set by browsers on every request.
	HeaderSecFetchSite = "Sec-Fetch-Site"

	secFetchSameOrigin = "same-origin"
	secFetchNone       = "none"
	bearerPrefix       = "Bearer "
)

// AccessMiddlewareParams holds dependencies for AccessMiddleware, injected by Fx.
type AccessMiddlewareParams struct {
	fx.In

	SessionVerifier service.SessionVerifier
	Config          *config.Config
	Logger          *slog.Logger
}

// AccessMiddleware enforces the device key, same-origin and session policies.
type AccessMiddleware struct {
	verifier     service.SessionVerifier
	deviceAPIKey []byte
	cookieName   string
	adminRole    string
	allowNone    bool
	logger       *slog.Logger
}

// NewAccessMiddleware is the constructor for AccessMiddleware.
func NewAccessMiddleware(params AccessMiddlewareParams) *AccessMiddleware {
	auth := params.Config.Auth
	if auth == nil {
		auth = &config.AuthConfig{}
	}

	return &AccessMiddleware{
		verifier:     params.SessionVerifier,
		deviceAPIKey: []byte(auth.DeviceAPIKey),
		cookieName:   auth.Session.CookieName,
		adminRole:    auth.AdminRole,
		allowNone:    params.Config.Env.Env == config.EnvDevelopment,
		logger:       params.Logger,
	}
}

// DeviceKey admits requests carrying the configured device API key.
func (m *AccessMiddleware) DeviceKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(HeaderAPIKey)
		// An unset server key rejects everything.
		if len(m.deviceAPIKey) == 0 || subtle.ConstantTimeCompare([]byte(key), m.deviceAPIKey) != 1 {
			return domainerrors.ErrInvalidAPIKey
		}

		return next(c)
	}
}

// SameOrigin admits browser requests issued by the dashboard origin itself.
// A valid session, when present, is attached but not required.
func (m *AccessMiddleware) SameOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		site := c.Request().Header.Get(HeaderSecFetchSite)
		if site != secFetchSameOrigin && (!m.allowNone || site != secFetchNone) {
			return domainerrors.ErrCrossOrigin
		}

		if token := m.sessionToken(c); token != "" {
			if session, err := m.verifier.Verify(c.Request().Context(), token); err == nil {
				deliverycontext.SetSession(c, session)
			}
		}

		return next(c)
	}
}

// Session requires a verified browser session.
func (m *AccessMiddleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		session, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Session rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole must be used after Session.
func (m *AccessMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if session.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireAdmin requires the configured admin role.
func (m *AccessMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(m.adminRole)
}

func (m *AccessMiddleware) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return ""
}
