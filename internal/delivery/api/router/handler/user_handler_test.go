package handler

import (
	"net/http"
	"testing"

	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	mockUsecase "peeko/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	userUC   *mockUsecase.MockUserUsecase
	socialUC *mockUsecase.MockSocialUsecase
}

func newTestUserHandler(t *testing.T) (*UserHandler, *userHandlerFixtures) {
	f := &userHandlerFixtures{
		userUC:   mockUsecase.NewMockUserUsecase(t),
		socialUC: mockUsecase.NewMockSocialUsecase(t),
	}

	return NewUserHandler(UserHandlerParams{UserUC: f.userUC, SocialUC: f.socialUC, Logger: newDiscardLogger()}), f
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		h, _ := newTestUserHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/user/me", "", nil)

		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with session", func(t *testing.T) {
		h, f := newTestUserHandler(t)
		f.userUC.EXPECT().GetByExternalID(mock.Anything, "user_1").
			Return(&entity.User{ExternalID: "user_1"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/user/me", "", nil)
		deliverycontext.SetSession(c, &entity.Session{ExternalID: "user_1"})

		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserHandler_GetByCode_NotFound(t *testing.T) {
	h, f := newTestUserHandler(t)
	f.userUC.EXPECT().GetByCode(mock.Anything, "ZZZZZZ").Return(nil, domainerrors.ErrUserNotFound)

	c, rec := newJSONContext(http.MethodGet, "/", "", map[string]string{"userCode": "ZZZZZZ"})

	require.NoError(t, h.GetByCode(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_GetUserCodeQR(t *testing.T) {
	h, f := newTestUserHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.userUC.EXPECT().GetUserCodeQR(mock.Anything, "A1B2C3").Return(png, nil)

	c, rec := newJSONContext(http.MethodGet, "/", "", map[string]string{"userCode": "A1B2C3"})

	require.NoError(t, h.GetUserCodeQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestUserHandler_GetFriends(t *testing.T) {
	h, f := newTestUserHandler(t)
	f.socialUC.EXPECT().GetFriends(mock.Anything, "user_1").
		Return([]*entity.User{{ID: uuid.New(), ExternalID: "user_2"}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/", "", map[string]string{"externalId": "user_1"})

	require.NoError(t, h.GetFriends(c))
	assert.Len(t, decodeBody(t, rec)["users"], 1)
}

func TestUserHandler_AddAnimationBundle(t *testing.T) {
	h, f := newTestUserHandler(t)
	f.userUC.EXPECT().AddAnimationBundle(mock.Anything, "user_1", "sunrise").
		Return(&entity.User{ExternalID: "user_1", AnimationBundles: []string{"sunrise"}}, nil)

	c, rec := newJSONContext(http.MethodPatch, "/", `{"bundleId":"sunrise"}`, map[string]string{"externalId": "user_1"})

	require.NoError(t, h.AddAnimationBundle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
