package postgres

import (
	"context"
	"strings"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	idxUsersExternalID = "idx_users_external_id"
	idxUsersUserCode   = "idx_users_user_code"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Friends", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("SentRequests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("ReceivedRequests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("AnimationBundles", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

func (repo *userRepository) findOne(ctx context.Context, column string, value any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.withRelations(ctx).Where(column+" = ?", value).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to find user by %s", column)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. Relation sets on the entity are ignored; they are written by their own repositories.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			switch violatedConstraint(err) {
			case idxUsersUserCode:
				return repository.ErrDuplicateUserCode
			case idxUsersExternalID:
				return repository.ErrDuplicateExternalID
			default:
				// gorm's translated error drops the constraint name; the external ID is the likelier race.
				return repository.ErrDuplicateExternalID
			}
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id", id)
}

func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return repo.findOne(ctx, "external_id", externalID)
}

func (repo *userRepository) FindByCode(ctx context.Context, code string) (*entity.User, error) {
	return repo.findOne(ctx, "user_code", code)
}

func (repo *userRepository) FindByCodes(ctx context.Context, codes []string) ([]*entity.User, error) {
	if len(codes) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("user_code IN ?", codes).Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by codes")
	}

	return toUserDomains(userModels), nil
}

func (repo *userRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("user_code = ?", code).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user code")
	}

	return count > 0, nil
}

func (repo *userRepository) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR user_code ILIKE ?", pattern, pattern, pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return toUserDomains(userModels), nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("external_id = ?", user.ExternalID).
		Updates(map[string]any{
			"username":     user.Username,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"email":        user.Email,
			"phone_number": user.PhoneNumber,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) SetDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("device_id", deviceID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to link device to user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) AddAnimationBundle(ctx context.Context, userID uuid.UUID, bundleID string) error {
	bundleM := &model.UserAnimationBundleModel{UserID: userID, BundleID: bundleID}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(bundleM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to add animation bundle")
	}

	return nil
}

// LockForUpdate row-locks the users until the surrounding transaction ends. Rows are locked in
// ascending ID order so two transactions locking the same pair cannot deadlock.
func (repo *userRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) error {
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var locked []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id ASC").
		Pluck("id", &locked).Error; err != nil {
		return errors.Wrap(err, "failed to lock users")
	}

	if len(locked) != len(unique) {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                            data.ID,
		ExternalID:                    data.ExternalID,
		Username:                      data.Username,
		FirstName:                     data.FirstName,
		LastName:                      data.LastName,
		Email:                         data.Email,
		PhoneNumber:                   data.PhoneNumber,
		UserCode:                      data.UserCode,
		DeviceID:                      data.DeviceID,
		Friends:                       make([]uuid.UUID, 0, len(data.Friends)),
		SentPendingFriendRequests:     make([]uuid.UUID, 0, len(data.SentRequests)),
		ReceivedPendingFriendRequests: make([]uuid.UUID, 0, len(data.ReceivedRequests)),
		AnimationBundles:              make([]string, 0, len(data.AnimationBundles)),
		CreatedAt:                     data.CreatedAt,
		UpdatedAt:                     data.UpdatedAt,
	}

	for _, f := range data.Friends {
		user.Friends = append(user.Friends, f.FriendID)
	}
	for _, r := range data.SentRequests {
		user.SentPendingFriendRequests = append(user.SentPendingFriendRequests, r.TargetID)
	}
	for _, r := range data.ReceivedRequests {
		user.ReceivedPendingFriendRequests = append(user.ReceivedPendingFriendRequests, r.RequesterID)
	}
	for _, b := range data.AnimationBundles {
		user.AnimationBundles = append(user.AnimationBundles, b.BundleID)
	}

	return user
}

func toUserDomains(models []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for _, userM := range models {
		users = append(users, toUserDomain(userM))
	}

	return users
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		ExternalID:  data.ExternalID,
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		UserCode:    data.UserCode,
		DeviceID:    data.DeviceID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
