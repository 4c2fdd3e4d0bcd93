package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"peeko/config"
	"peeko/internal/domain/entity"
	"peeko/internal/domain/repository"
	mockRepo "peeko/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Social: &config.SocialConfig{
			SearchLimit:      20,
			UserCodeAttempts: 3,
		},
	}
}

// txRepos are the repositories handed to a transaction callback.
type txRepos struct {
	userRepo       *mockRepo.MockUserRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	deviceRepo     *mockRepo.MockDeviceRepository
}

// expectTransaction makes txManager run the callback against fresh transactional mocks
// and return the callback's error.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepos {
	t.Helper()

	repos := txRepos{
		userRepo:       mockRepo.NewMockUserRepository(t),
		friendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		deviceRepo:     mockRepo.NewMockDeviceRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(repos.userRepo).Maybe()
	factory.EXPECT().FriendshipRepo().Return(repos.friendshipRepo).Maybe()
	factory.EXPECT().DeviceRepo().Return(repos.deviceRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return repos
}

func newTestUser(externalID, code string) *entity.User {
	return &entity.User{
		ID:                            uuid.New(),
		ExternalID:                    externalID,
		Username:                      externalID,
		UserCode:                      code,
		Friends:                       []uuid.UUID{},
		SentPendingFriendRequests:     []uuid.UUID{},
		ReceivedPendingFriendRequests: []uuid.UUID{},
		AnimationBundles:              []string{},
	}
}
