package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "peeko/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail bool
	}{
		{"app error", domainerrors.ErrInvalidMood, http.StatusBadRequest, "INVALID_MOOD", false},
		{"wrapped app error", errors.Wrap(domainerrors.ErrDeviceNotFound, "set mood"), http.StatusNotFound, "DEVICE_NOT_FOUND", false},
		{"app error with details", domainerrors.ErrValidationFailed.WithDetails("content is required"), http.StatusBadRequest, "VALIDATION_FAILED", true},
		{"database error hides details", domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert"), http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", false},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR", false},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string `json:"code"`
					Details any    `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details != nil)
		})
	}
}
