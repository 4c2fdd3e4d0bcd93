package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "peeko/internal/domain/errors"
	mockSvc "peeko/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		allow   bool
		wantErr error
	}{
		{"within quota", true, nil},
		{"over quota", false, domainerrors.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := mockSvc.NewMockRateLimiter(t)
			limiter.EXPECT().Allow(mock.Anything, "messages:open:A1B2C3").Return(tt.allow)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodPatch, "/", nil), httptest.NewRecorder())
			c.SetParamNames("userCode")
			c.SetParamValues(" a1b2c3")

			err := RateLimit(limiter, "messages:open", "userCode")(okHandler)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
