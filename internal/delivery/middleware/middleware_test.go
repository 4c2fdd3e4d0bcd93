package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"peeko/config"
	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"keeps client id", "abc-123", true},
		{"generates when missing", "", false},
		{"replaces id with spaces", "bad id", false},
		{"replaces oversized id", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.True(t, hasLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func newLoggerUnderTest(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg), buf
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("skips successful requests outside debug", func(t *testing.T) {
		m, buf := newLoggerUnderTest(false)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		err := m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

		require.NoError(t, err)
		assert.Zero(t, buf.Len())
	})

	t.Run("logs failures with the rendered status", func(t *testing.T) {
		m, buf := newLoggerUnderTest(false)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)
		deliverycontext.SetSession(c, &entity.Session{ExternalID: "user_1"})

		err := m.Handle(func(c echo.Context) error { return echo.ErrNotFound })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"external_id":"user_1"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("logs everything in debug", func(t *testing.T) {
		m, buf := newLoggerUnderTest(true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health?x=1", nil), httptest.NewRecorder())

		err := m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"query":"x=1"`)
		assert.Contains(t, buf.String(), `"level":"INFO"`)
	})
}
