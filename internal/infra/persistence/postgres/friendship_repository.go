package postgres

import (
	"context"
	"time"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// friendshipRepository implements repository.FriendshipRepository over the
// friend_requests and friendships tables.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (repo *friendshipRepository) CreateRequest(ctx context.Context, requesterID, targetID uuid.UUID) (bool, error) {
	requestM := &model.FriendRequestModel{RequesterID: requesterID, TargetID: targetID}

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(requestM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrUserNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create friend request")
	}

	return result.RowsAffected > 0, nil
}

func (repo *friendshipRepository) DeleteRequest(ctx context.Context, requesterID, targetID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		Delete(&model.FriendRequestModel{})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friend request")
	}

	return result.RowsAffected > 0, nil
}

func (repo *friendshipRepository) AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userID, otherID, otherID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check friendship")
	}

	return count > 0, nil
}

func (repo *friendshipRepository) CreateFriendship(ctx context.Context, userID, otherID uuid.UUID) error {
	now := time.Now()
	rows := []model.FriendshipModel{
		{UserID: userID, FriendID: otherID, CreatedAt: now},
		{UserID: otherID, FriendID: userID, CreatedAt: now},
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	return nil
}

func (repo *friendshipRepository) FindFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Order("friendships.created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friends")
	}

	return toUserDomains(userModels), nil
}

func (repo *friendshipRepository) RestoreMirrors(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(`
		INSERT INTO friendships (user_id, friend_id, created_at)
		SELECT f.friend_id, f.user_id, f.created_at
		FROM friendships f
		WHERE NOT EXISTS (
			SELECT 1 FROM friendships m WHERE m.user_id = f.friend_id AND m.friend_id = f.user_id
		)
		ON CONFLICT DO NOTHING`)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to restore friendship mirrors")
	}

	return result.RowsAffected, nil
}

func (repo *friendshipRepository) ResolveMutualRequests(ctx context.Context) (int64, error) {
	var consumed int64
	err := repo.db.WithContext(ctx).Raw(`
		WITH mutual AS (
			DELETE FROM friend_requests r
			USING friend_requests o
			WHERE o.requester_id = r.target_id AND o.target_id = r.requester_id
			RETURNING r.requester_id, r.target_id
		), befriended AS (
			INSERT INTO friendships (user_id, friend_id, created_at)
			SELECT requester_id, target_id, NOW() FROM mutual
			ON CONFLICT DO NOTHING
		)
		SELECT COUNT(*) FROM mutual`).Scan(&consumed).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to resolve mutual friend requests")
	}

	return consumed, nil
}

func (repo *friendshipRepository) PurgeResolvedRequests(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(`
		DELETE FROM friend_requests r
		WHERE EXISTS (
			SELECT 1 FROM friendships f WHERE f.user_id = r.requester_id AND f.friend_id = r.target_id
		)`)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge resolved friend requests")
	}

	return result.RowsAffected, nil
}
