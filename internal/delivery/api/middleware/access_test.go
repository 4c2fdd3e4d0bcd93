package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"peeko/config"
	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/service"
	mockSvc "peeko/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDeviceKey = "device-secret"

func newTestAccessMiddleware(t *testing.T, env string) (*AccessMiddleware, *mockSvc.MockSessionVerifier) {
	t.Helper()

	verifier := mockSvc.NewMockSessionVerifier(t)
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			DeviceAPIKey: testDeviceKey,
			AdminRole:    "admin",
			Session:      config.SessionConfig{CookieName: "__session"},
		},
	}
	cfg.Env.Env = env

	m := NewAccessMiddleware(AccessMiddlewareParams{
		SessionVerifier: verifier,
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return m, verifier
}

func newTestContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAccessMiddleware_DeviceKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"valid key", testDeviceKey, nil},
		{"missing key", "", domainerrors.ErrInvalidAPIKey},
		{"wrong key", "device-secreT", domainerrors.ErrInvalidAPIKey},
		{"prefix of key", "device", domainerrors.ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAccessMiddleware(t, "production")
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}

			err := m.DeviceKey(okHandler)(newTestContext(req))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessMiddleware_DeviceKey_UnsetServerKeyRejects(t *testing.T) {
	m := NewAccessMiddleware(AccessMiddlewareParams{
		Config: &config.Config{Auth: &config.AuthConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderAPIKey, "")

	err := m.DeviceKey(okHandler)(newTestContext(req))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAPIKey)
}

func TestAccessMiddleware_SameOrigin(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		site    string
		wantErr bool
	}{
		{"same origin", "production", "same-origin", false},
		{"cross site", "production", "cross-site", true},
		{"same site is not same origin", "production", "same-site", true},
		{"missing header", "production", "", true},
		{"none rejected in production", "production", "none", true},
		{"none accepted in development", config.EnvDevelopment, "none", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAccessMiddleware(t, tt.env)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.site != "" {
				req.Header.Set(HeaderSecFetchSite, tt.site)
			}

			err := m.SameOrigin(okHandler)(newTestContext(req))

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrCrossOrigin)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessMiddleware_SameOrigin_AttachesOptionalSession(t *testing.T) {
	m, verifier := newTestAccessMiddleware(t, "production")
	verifier.EXPECT().Verify(mock.Anything, "cookie-token").
		Return(&entity.Session{ExternalID: "user_1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderSecFetchSite, "same-origin")
	req.AddCookie(&http.Cookie{Name: "__session", Value: "cookie-token"})
	c := newTestContext(req)

	var got *entity.Session
	err := m.SameOrigin(func(c echo.Context) error {
		got, _ = deliverycontext.GetSession(c)

		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user_1", got.ExternalID)
}

func TestAccessMiddleware_SameOrigin_IgnoresInvalidSession(t *testing.T) {
	m, verifier := newTestAccessMiddleware(t, "production")
	verifier.EXPECT().Verify(mock.Anything, "stale").Return(nil, service.ErrInvalidSession)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderSecFetchSite, "same-origin")
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
	c := newTestContext(req)

	err := m.SameOrigin(okHandler)(c)

	require.NoError(t, err)
	_, ok := deliverycontext.GetSession(c)
	assert.False(t, ok)
}

func TestAccessMiddleware_Session(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		m, _ := newTestAccessMiddleware(t, "production")
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)

		err := m.Session(okHandler)(newTestContext(req))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, verifier := newTestAccessMiddleware(t, "production")
		verifier.EXPECT().Verify(mock.Anything, "bad").Return(nil, service.ErrInvalidSession)
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")

		err := m.Session(okHandler)(newTestContext(req))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("cookie wins over bearer", func(t *testing.T) {
		m, verifier := newTestAccessMiddleware(t, "production")
		verifier.EXPECT().Verify(mock.Anything, "from-cookie").
			RunAndReturn(func(_ context.Context, token string) (*entity.Session, error) {
				return &entity.Session{ExternalID: "user_2", Role: "admin"}, nil
			})
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(&http.Cookie{Name: "__session", Value: "from-cookie"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
		c := newTestContext(req)

		err := m.Session(m.RequireAdmin()(okHandler))(c)

		require.NoError(t, err)
		session, ok := deliverycontext.GetSession(c)
		require.True(t, ok)
		assert.Equal(t, "user_2", session.ExternalID)
	})
}

func TestAccessMiddleware_RequireRole(t *testing.T) {
	m, _ := newTestAccessMiddleware(t, "production")

	t.Run("no session", func(t *testing.T) {
		c := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, m.RequireAdmin()(okHandler)(c), domainerrors.ErrUnauthorized)
	})

	t.Run("wrong role", func(t *testing.T) {
		c := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		deliverycontext.SetSession(c, &entity.Session{ExternalID: "user_3", Role: "member"})

		assert.ErrorIs(t, m.RequireAdmin()(okHandler)(c), domainerrors.ErrForbidden)
	})
}
