package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	mockRepo "peeko/internal/mocks/repository"
	"peeko/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return messageServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	alice := newTestUser("user_alice", "AAA111")
	meta := map[string]any{"animation": map[string]any{"id": "wave", "loops": float64(2)}}

	fx.userRepo.EXPECT().FindByCode(ctx, "AAA111").Return(alice, nil)
	fx.userRepo.EXPECT().FindByCode(ctx, "BBB222").Return(nil, repository.ErrUserNotFound)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = "65f0c0ffee"
		}).
		Return(nil)

	msg, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SourceCode:      "aaa111",
		DestinationCode: "BBB222",
		Content:         "  hi  ",
		Meta:            meta,
	})

	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee", msg.ID)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, entity.SourceTypeUser, msg.SourceType)
	assert.Equal(t, "AAA111", msg.SourceCode)
	assert.Equal(t, alice.ID, *msg.SourceUserID)
	assert.Nil(t, msg.DestinationUserID)
	assert.Equal(t, meta, msg.Meta)
	assert.False(t, msg.Opened)
}

func TestMessageService_SendMessage_LookupFailureIsIgnored(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByCode(ctx, mock.Anything).Return(nil, errors.New("pool exhausted"))
	fx.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)

	msg, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SourceCode:      "AAA111",
		DestinationCode: "BBB222",
		Content:         "hi",
		SourceType:      entity.SourceTypeSystem,
	})

	require.NoError(t, err)
	assert.Nil(t, msg.SourceUserID)
	assert.Nil(t, msg.DestinationUserID)
	assert.Equal(t, entity.SourceTypeSystem, msg.SourceType)
}

func TestMessageService_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SendMessageInput
		wantErr error
	}{
		{
			name:    "blank content",
			input:   &usecase.SendMessageInput{SourceCode: "AAA111", DestinationCode: "BBB222", Content: " \n\t "},
			wantErr: domainerrors.ErrEmptyMessage,
		},
		{
			name:    "unknown source type",
			input:   &usecase.SendMessageInput{SourceCode: "AAA111", DestinationCode: "BBB222", Content: "hi", SourceType: "ROBOT"},
			wantErr: domainerrors.ErrInvalidSourceType,
		},
		{
			name:    "missing destination",
			input:   &usecase.SendMessageInput{SourceCode: "AAA111", Content: "hi"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessageService(t)

			msg, err := fx.service.SendMessage(context.Background(), tt.input)

			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMessageService_FetchConversation_IsPureRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	t0 := time.Now()
	history := []*entity.Message{
		newTestMessage("1", "AAA111", "BBB222", t0, false),
		newTestMessage("2", "BBB222", "AAA111", t0.Add(time.Second), false),
	}

	fx.messageRepo.EXPECT().FindConversation(ctx, "AAA111", "BBB222").Return(history, nil)

	messages, err := fx.service.FetchConversation(ctx, "AAA111", "BBB222")

	require.NoError(t, err)
	assert.Equal(t, history, messages)
	assert.False(t, messages[1].Opened)
}

func TestMessageService_GetConversation_MarksPartnerMessagesRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	t0 := time.Now()
	history := []*entity.Message{
		newTestMessage("1", "AAA111", "BBB222", t0, false),
		newTestMessage("2", "BBB222", "AAA111", t0.Add(time.Second), false),
		newTestMessage("3", "BBB222", "AAA111", t0.Add(2*time.Second), true),
		newTestMessage("4", "BBB222", "AAA111", t0.Add(3*time.Second), false),
	}

	fx.messageRepo.EXPECT().FindConversation(ctx, "AAA111", "BBB222").Return(history, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, []string{"2", "4"}).Return(int64(2), nil)

	messages, err := fx.service.GetConversation(ctx, "AAA111", "BBB222")

	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.False(t, messages[0].Opened, "reader's own message is unaffected")
	assert.True(t, messages[1].Opened)
	assert.True(t, messages[2].Opened)
	assert.True(t, messages[3].Opened)
}

func TestMessageService_GetConversation_LeavesLaterMessagesUnread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	t0 := time.Now()
	stored := map[string]*entity.Message{
		"1": newTestMessage("1", "BBB222", "AAA111", t0, false),
	}

	fx.messageRepo.EXPECT().FindConversation(ctx, "AAA111", "BBB222").
		RunAndReturn(func(context.Context, string, string) ([]*entity.Message, error) {
			fetched := *stored["1"]
			// The partner sends again before the read is recorded.
			stored["2"] = newTestMessage("2", "BBB222", "AAA111", t0.Add(time.Second), false)

			return []*entity.Message{&fetched}, nil
		})
	fx.messageRepo.EXPECT().MarkRead(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) (int64, error) {
			var updated int64
			for _, id := range ids {
				if msg, ok := stored[id]; ok && !msg.Opened {
					msg.Opened = true
					updated++
				}
			}

			return updated, nil
		})

	messages, err := fx.service.GetConversation(ctx, "AAA111", "BBB222")

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Opened)
	assert.True(t, stored["1"].Opened)
	assert.False(t, stored["2"].Opened, "a message the reader never saw stays claimable")
}

func TestMessageService_GetConversation_NothingUnread(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	history := []*entity.Message{
		newTestMessage("1", "AAA111", "BBB222", time.Now(), false),
		newTestMessage("2", "BBB222", "AAA111", time.Now(), true),
	}

	fx.messageRepo.EXPECT().FindConversation(ctx, "AAA111", "BBB222").Return(history, nil)

	messages, err := fx.service.GetConversation(ctx, "AAA111", "BBB222")

	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageService_GetConversation_MarkFails(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	dbErr := errors.New("write conflict")
	history := []*entity.Message{newTestMessage("1", "BBB222", "AAA111", time.Now(), false)}

	fx.messageRepo.EXPECT().FindConversation(ctx, "AAA111", "BBB222").Return(history, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, []string{"1"}).Return(int64(0), dbErr)

	_, err := fx.service.GetConversation(ctx, "AAA111", "BBB222")

	assert.ErrorIs(t, err, dbErr)
}

func TestMessageService_GetInbox_ReadScenario(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	alice := newTestUser("alice", "AAA111")
	hi := newTestMessage("1", "AAA111", "BBB222", time.Now(), false)
	hi.Content = "hi"

	fx.messageRepo.EXPECT().FindByParticipant(ctx, "BBB222").Return([]*entity.Message{hi}, nil).Once()
	fx.userRepo.EXPECT().FindByCodes(ctx, []string{"AAA111"}).Return([]*entity.User{alice}, nil)

	inbox, err := fx.service.GetInbox(ctx, "BBB222")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "AAA111", inbox[0].PartnerCode)
	assert.Equal(t, "alice", inbox[0].PartnerName)
	assert.Equal(t, "hi", inbox[0].LastMessage.Content)
	assert.Equal(t, 1, inbox[0].UnreadCount)

	read := *hi
	read.Opened = true
	fx.messageRepo.EXPECT().FindByParticipant(ctx, "BBB222").Return([]*entity.Message{&read}, nil).Once()

	inbox, err = fx.service.GetInbox(ctx, "BBB222")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, 0, inbox[0].UnreadCount)
}

func TestMessageService_GetInbox_PartnerLookupFailureFallsBack(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	msg := newTestMessage("1", "AAA111", "BBB222", time.Now(), false)

	fx.messageRepo.EXPECT().FindByParticipant(ctx, "BBB222").Return([]*entity.Message{msg}, nil)
	fx.userRepo.EXPECT().FindByCodes(ctx, []string{"AAA111"}).Return(nil, errors.New("timeout"))

	inbox, err := fx.service.GetInbox(ctx, "BBB222")

	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "AAA111", inbox[0].PartnerName)
}

func TestMessageService_OpenMessage(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	claimed := newTestMessage("1", "AAA111", "BBB222", time.Now(), true)

	fx.messageRepo.EXPECT().ClaimOldestUnread(ctx, "BBB222").Return(claimed, nil).Once()
	fx.messageRepo.EXPECT().ClaimOldestUnread(ctx, "BBB222").Return(nil, repository.ErrMessageNotFound).Once()

	msg, err := fx.service.OpenMessage(ctx, "bbb222")
	require.NoError(t, err)
	assert.Same(t, claimed, msg)

	msg, err = fx.service.OpenMessage(ctx, "BBB222")
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestMessageService_OpenMessage_ConcurrentCallersClaimOnce(t *testing.T) {
	fx := createTestMessageService(t)

	claimed := newTestMessage("1", "AAA111", "BBB222", time.Now(), true)
	var taken atomic.Bool

	fx.messageRepo.EXPECT().
		ClaimOldestUnread(mock.Anything, "BBB222").
		RunAndReturn(func(context.Context, string) (*entity.Message, error) {
			if taken.CompareAndSwap(false, true) {
				return claimed, nil
			}

			return nil, repository.ErrMessageNotFound
		})

	const callers = 8
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := fx.service.OpenMessage(context.Background(), "BBB222")
			if err == nil && msg != nil {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestMessageService_MarkConversationRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()

	fx.messageRepo.EXPECT().MarkConversationRead(ctx, "AAA111", "BBB222").Return(int64(3), nil)

	updated, err := fx.service.MarkConversationRead(ctx, "aaa111", "bbb222")

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}

