package handler

import (
	"net/http"
	"testing"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	mockUsecase "peeko/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSocialHandler(t *testing.T) (*SocialHandler, *mockUsecase.MockSocialUsecase) {
	socialUC := mockUsecase.NewMockSocialUsecase(t)

	return NewSocialHandler(SocialHandlerParams{SocialUC: socialUC, Logger: newDiscardLogger()}), socialUC
}

func TestSocialHandler_SendFriendRequest(t *testing.T) {
	targetID := uuid.New()

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(m *mockUsecase.MockSocialUsecase)
		wantStatus int
	}{
		{
			name:   "sent",
			target: targetID.String(),
			body:   `{"requesterExternalId":"user_1"}`,
			setup: func(m *mockUsecase.MockSocialUsecase) {
				m.EXPECT().SendFriendRequest(mock.Anything, "user_1", targetID).
					Return(&entity.User{ExternalID: "user_1", SentPendingFriendRequests: []uuid.UUID{targetID}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "already friends",
			target: targetID.String(),
			body:   `{"requesterExternalId":"user_1"}`,
			setup: func(m *mockUsecase.MockSocialUsecase) {
				m.EXPECT().SendFriendRequest(mock.Anything, "user_1", targetID).Return(nil, domainerrors.ErrAlreadyFriends)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed target",
			target:     "not-a-uuid",
			body:       `{"requesterExternalId":"user_1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing requester",
			target:     targetID.String(),
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, socialUC := newTestSocialHandler(t)
			if tt.setup != nil {
				tt.setup(socialUC)
			}

			c, rec := newJSONContext(http.MethodPatch, "/", tt.body, map[string]string{"targetId": tt.target})

			require.NoError(t, h.SendFriendRequest(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSocialHandler_AcceptFriendRequest(t *testing.T) {
	h, socialUC := newTestSocialHandler(t)
	requesterID := uuid.New()
	socialUC.EXPECT().AcceptFriendRequest(mock.Anything, "user_2", requesterID).
		Return(nil, domainerrors.ErrFriendRequestNotFound)

	c, rec := newJSONContext(http.MethodPatch, "/", `{"receiverExternalId":"user_2"}`,
		map[string]string{"requesterId": requesterID.String()})

	require.NoError(t, h.AcceptFriendRequest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
