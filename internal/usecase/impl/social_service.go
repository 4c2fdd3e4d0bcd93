package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// socialService implements the SocialUsecase interface.
// Every mutation runs in one transaction so the pending and friend sets of both users change together.
type socialService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	logger         *slog.Logger
}

// SocialServiceParams holds dependencies for SocialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	FriendshipRepo repository.FriendshipRepository
	Logger         *slog.Logger
}

// NewSocialService creates a new social service instance
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		friendshipRepo: params.FriendshipRepo,
		logger:         params.Logger,
	}
}

func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendFriendRequest records a pending request. Re-sending is a no-op; a request that meets a pending
// request in the opposite direction is resolved as an accept.
func (srv *socialService) SendFriendRequest(ctx context.Context, requesterExternalID string, targetID uuid.UUID) (*entity.User, error) {
	var sender *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		friendshipRepo := repoFactory.FriendshipRepo()

		requester, target, err := resolvePair(ctx, userRepo, requesterExternalID, targetID)
		if err != nil {
			return err
		}

		if requester.ID == target.ID {
			return domainerrors.ErrSelfFriendRequest
		}

		// Opposite sends for the same pair serialise here, so the later one sees the earlier request.
		if err := userRepo.LockForUpdate(ctx, []uuid.UUID{requester.ID, target.ID}); err != nil {
			return translateUserError(err, "failed to lock users")
		}

		friends, err := friendshipRepo.AreFriends(ctx, requester.ID, target.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check friendship")
		}
		if friends {
			return domainerrors.ErrAlreadyFriends
		}

		reversePending, err := friendshipRepo.DeleteRequest(ctx, target.ID, requester.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check reverse friend request")
		}

		if reversePending {
			if err := friendshipRepo.CreateFriendship(ctx, requester.ID, target.ID); err != nil {
				return errors.Wrap(err, "failed to create friendship")
			}

			srv.log(ctx).Info("Mutual friend requests resolved as friendship",
				slog.Any("userID", requester.ID),
				slog.Any("otherID", target.ID),
			)
		} else {
			created, err := friendshipRepo.CreateRequest(ctx, requester.ID, target.ID)
			if err != nil {
				return errors.Wrap(err, "failed to create friend request")
			}

			srv.log(ctx).Debug("Friend request recorded",
				slog.Any("requesterID", requester.ID),
				slog.Any("targetID", target.ID),
				slog.Bool("created", created),
			)
		}

		sender, err = userRepo.FindByID(ctx, requester.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload requester")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sender, nil
}

// AcceptFriendRequest consumes the pending request from requesterID and creates the friendship.
// Accepting a request that was already resolved into a friendship returns the receiver unchanged.
func (srv *socialService) AcceptFriendRequest(ctx context.Context, receiverExternalID string, requesterID uuid.UUID) (*entity.User, error) {
	var receiver *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		friendshipRepo := repoFactory.FriendshipRepo()

		self, requester, err := resolvePair(ctx, userRepo, receiverExternalID, requesterID)
		if err != nil {
			return err
		}

		if err := userRepo.LockForUpdate(ctx, []uuid.UUID{self.ID, requester.ID}); err != nil {
			return translateUserError(err, "failed to lock users")
		}

		removed, err := friendshipRepo.DeleteRequest(ctx, requester.ID, self.ID)
		if err != nil {
			return errors.Wrap(err, "failed to remove friend request")
		}

		if !removed {
			friends, err := friendshipRepo.AreFriends(ctx, self.ID, requester.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check friendship")
			}
			if !friends {
				return domainerrors.ErrFriendRequestNotFound
			}

			srv.log(ctx).Debug("Friend request already accepted", slog.Any("requesterID", requester.ID))
			receiver = self

			return nil
		}

		if _, err := friendshipRepo.DeleteRequest(ctx, self.ID, requester.ID); err != nil {
			return errors.Wrap(err, "failed to remove reverse friend request")
		}

		if err := friendshipRepo.CreateFriendship(ctx, self.ID, requester.ID); err != nil {
			return errors.Wrap(err, "failed to create friendship")
		}

		receiver, err = userRepo.FindByID(ctx, self.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload receiver")
		}

		srv.log(ctx).Info("Friend request accepted",
			slog.Any("receiverID", self.ID),
			slog.Any("requesterID", requester.ID),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return receiver, nil
}

func (srv *socialService) GetFriends(ctx context.Context, externalID string) ([]*entity.User, error) {
	user, err := srv.userRepo.FindByExternalID(ctx, strings.TrimSpace(externalID))
	if err != nil {
		return nil, translateUserError(err, "failed to find user by external id")
	}

	friends, err := srv.friendshipRepo.FindFriends(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friends")
	}

	return friends, nil
}

// resolvePair loads the acting user by external ID and the other party by internal ID.
func resolvePair(ctx context.Context, userRepo repository.UserRepository, externalID string, otherID uuid.UUID) (*entity.User, *entity.User, error) {
	self, err := userRepo.FindByExternalID(ctx, strings.TrimSpace(externalID))
	if err != nil {
		return nil, nil, translateUserError(err, "failed to find user by external id")
	}

	other, err := userRepo.FindByID(ctx, otherID)
	if err != nil {
		return nil, nil, translateUserError(err, "failed to find user by id")
	}

	return self, other, nil
}
