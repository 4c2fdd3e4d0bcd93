package handler

import (
	"net/http"
	"testing"

	"peeko/internal/domain/entity"
	"peeko/internal/usecase"
	mockUsecase "peeko/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWebhookHandler(t *testing.T) (*WebhookHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewWebhookHandler(WebhookHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestWebhookHandler_UserCreated(t *testing.T) {
	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{"new user", true, http.StatusCreated},
		{"replayed event", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userUC := newTestWebhookHandler(t)
			userUC.EXPECT().CreateUser(mock.Anything, &usecase.UserProfileInput{
				ExternalID: "user_1",
				Username:   "nina",
				Email:      "Nina@Example.com",
				FirstName:  "Nina",
			}).Return(&entity.User{ExternalID: "user_1", UserCode: "A1B2C3"}, tt.created, nil)

			c, rec := newJSONContext(http.MethodPost, "/webhooks/identity",
				`{"type":"user.created","data":{"id":"user_1","username":"nina","email":"Nina@Example.com","firstName":"Nina"}}`, nil)

			require.NoError(t, h.IdentityWebhook(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "A1B2C3", decodeBody(t, rec)["user"].(map[string]any)["userCode"])
		})
	}
}

func TestWebhookHandler_UserUpdated(t *testing.T) {
	h, userUC := newTestWebhookHandler(t)
	userUC.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.UserProfileInput) bool {
		return in.ExternalID == "user_1" && in.LastName == "Park"
	})).Return(&entity.User{ExternalID: "user_1", LastName: "Park"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/webhooks/identity",
		`{"type":"user.updated","data":{"id":"user_1","lastName":"Park"}}`, nil)

	require.NoError(t, h.IdentityWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_IgnoresOtherEvents(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/webhooks/identity",
		`{"type":"session.created","data":{"id":"user_1"}}`, nil)

	require.NoError(t, h.IdentityWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["user"])
}

func TestWebhookHandler_RejectsMissingUserID(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/webhooks/identity", `{"type":"user.created","data":{}}`, nil)

	require.NoError(t, h.IdentityWebhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
