package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"peeko/config"
	apimiddleware "peeko/internal/delivery/api/middleware"
	"peeko/internal/delivery/api/router"
	"peeko/internal/delivery/api/router/handler"
	"peeko/internal/domain/entity"
	"peeko/internal/infra/auth"
	mockSvc "peeko/internal/mocks/service"
	mockUsecase "peeko/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testDeviceKey     = "device-key"
	testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"
)

type serverFixtures struct {
	userUC        *mockUsecase.MockUserUsecase
	socialUC      *mockUsecase.MockSocialUsecase
	messageUC     *mockUsecase.MockMessageUsecase
	deviceUC      *mockUsecase.MockDeviceUsecase
	firmwareUC    *mockUsecase.MockFirmwareUsecase
	maintenanceUC *mockUsecase.MockMaintenanceUsecase
	verifier      *mockSvc.MockSessionVerifier
	limiter       *mockSvc.MockRateLimiter
}

func newTestEcho(t *testing.T) (*echo.Echo, *serverFixtures) {
	t.Helper()

	f := &serverFixtures{
		userUC:        mockUsecase.NewMockUserUsecase(t),
		socialUC:      mockUsecase.NewMockSocialUsecase(t),
		messageUC:     mockUsecase.NewMockMessageUsecase(t),
		deviceUC:      mockUsecase.NewMockDeviceUsecase(t),
		firmwareUC:    mockUsecase.NewMockFirmwareUsecase(t),
		maintenanceUC: mockUsecase.NewMockMaintenanceUsecase(t),
		verifier:      mockSvc.NewMockSessionVerifier(t),
		limiter:       mockSvc.NewMockRateLimiter(t),
	}

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			DeviceAPIKey:  testDeviceKey,
			WebhookSecret: testWebhookSecret,
			AdminRole:     "admin",
			Session:       config.SessionConfig{CookieName: "__session"},
		},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			UserHandler:        handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, SocialUC: f.socialUC, Logger: logger}),
			SocialHandler:      handler.NewSocialHandler(handler.SocialHandlerParams{SocialUC: f.socialUC, Logger: logger}),
			MessageHandler:     handler.NewMessageHandler(handler.MessageHandlerParams{MessageUC: f.messageUC, Logger: logger}),
			DeviceHandler:      handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.deviceUC, Logger: logger}),
			FirmwareHandler:    handler.NewFirmwareHandler(handler.FirmwareHandlerParams{FirmwareUC: f.firmwareUC, Logger: logger}),
			WebhookHandler:     handler.NewWebhookHandler(handler.WebhookHandlerParams{UserUC: f.userUC, Logger: logger}),
			MaintenanceHandler: handler.NewMaintenanceHandler(handler.MaintenanceHandlerParams{MaintenanceUC: f.maintenanceUC, Logger: logger}),
			AccessMiddleware: apimiddleware.NewAccessMiddleware(apimiddleware.AccessMiddlewareParams{
				SessionVerifier: f.verifier,
				Config:          cfg,
				Logger:          logger,
			}),
			RateLimiter: f.limiter,
			Config:      cfg,
			Logger:      logger,
		},
	})

	return e, f
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_DeviceRoutesRequireKey(t *testing.T) {
	e, f := newTestEcho(t)

	t.Run("missing key", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/devices/A1B2C3", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "INVALID_API_KEY", errorCode(t, rec))
	})

	t.Run("valid key", func(t *testing.T) {
		f.deviceUC.EXPECT().GetDevice(mock.Anything, "A1B2C3").
			Return(&entity.Device{Code: "A1B2C3", Mood: entity.MoodDefault}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/A1B2C3", nil)
		req.Header.Set(apimiddleware.HeaderAPIKey, testDeviceKey)
		rec := serve(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"device":{`)
	})
}

func TestServer_OpenMessageIsRateLimited(t *testing.T) {
	e, f := newTestEcho(t)

	f.limiter.EXPECT().Allow(mock.Anything, "messages:open:A1B2C3").Return(true).Once()
	f.messageUC.EXPECT().OpenMessage(mock.Anything, "A1B2C3").Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/messages/open/A1B2C3", nil)
	req.Header.Set(apimiddleware.HeaderAPIKey, testDeviceKey)
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":null`)

	f.limiter.EXPECT().Allow(mock.Anything, "messages:open:A1B2C3").Return(false).Once()

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/messages/open/A1B2C3", nil)
	req.Header.Set(apimiddleware.HeaderAPIKey, testDeviceKey)
	rec = serve(e, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
}

func TestServer_DashboardAPIRequiresSameOrigin(t *testing.T) {
	e, f := newTestEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/users/search?q=al", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CROSS_ORIGIN_FORBIDDEN", errorCode(t, rec))

	f.userUC.EXPECT().SearchUsers(mock.Anything, "al").Return([]*entity.User{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/search?q=al", nil)
	req.Header.Set(apimiddleware.HeaderSecFetchSite, "same-origin")
	rec = serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":[]`)
}

func TestServer_AcceptRouteDoesNotCollideWithUserRoutes(t *testing.T) {
	e, f := newTestEcho(t)
	requesterID := uuid.New()

	f.socialUC.EXPECT().AcceptFriendRequest(mock.Anything, "receiver", requesterID).
		Return(&entity.User{ExternalID: "receiver"}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/friend-requests/"+requesterID.String()+"/accept",
		strings.NewReader(`{"receiverExternalId":"receiver"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(apimiddleware.HeaderSecFetchSite, "same-origin")
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_SessionRoutes(t *testing.T) {
	e, f := newTestEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/user/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.verifier.EXPECT().Verify(mock.Anything, "member-token").
		Return(&entity.Session{ExternalID: "user_1", Role: "member"}, nil)
	f.userUC.EXPECT().GetByExternalID(mock.Anything, "user_1").
		Return(&entity.User{ExternalID: "user_1", UserCode: "A1B2C3"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "member-token"})
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userCode":"A1B2C3"`)

	req = httptest.NewRequest(http.MethodPost, "/dashboard/maintenance/reconcile", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "member-token"})
	rec = serve(e, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
}

func TestServer_AdminReconcile(t *testing.T) {
	e, f := newTestEcho(t)

	f.verifier.EXPECT().Verify(mock.Anything, "admin-token").
		Return(&entity.Session{ExternalID: "admin_1", Role: "admin"}, nil)
	f.maintenanceUC.EXPECT().Reconcile(mock.Anything).
		Return(&entity.ReconcileReport{FriendshipMirrorsRestored: 2}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/dashboard/maintenance/reconcile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"friendshipMirrorsRestored":2`)
}

func TestServer_IdentityWebhook(t *testing.T) {
	e, f := newTestEcho(t)
	body := `{"type":"user.created","data":{"id":"user_9","username":"nina"}}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_SIGNATURE", errorCode(t, rec))

	f.userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).
		Return(&entity.User{ExternalID: "user_9", Username: "nina"}, true, nil).Once()

	req = httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	webhookVerifier, err := auth.NewWebhookVerifier(testWebhookSecret)
	require.NoError(t, err)
	signed, err := webhookVerifier.SignHeaders("msg_2Lh9", time.Now(), []byte(body))
	require.NoError(t, err)
	for key, values := range signed {
		req.Header[key] = values
	}
	rec = serve(e, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
