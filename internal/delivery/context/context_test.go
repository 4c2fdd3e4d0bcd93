package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("stored value", func(t *testing.T) {
		c := newEchoContext()
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("response header fallback", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "req-2")

		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		_, err := uuid.Parse(GetRequestID(newEchoContext()))

		assert.NoError(t, err)
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestSession(t *testing.T) {
	c := newEchoContext()

	_, ok := GetSession(c)
	assert.False(t, ok)

	SetSession(c, &entity.Session{ExternalID: "user_1", Role: "admin"})
	session, ok := GetSession(c)
	assert.True(t, ok)
	assert.Equal(t, "admin", session.Role)
}
