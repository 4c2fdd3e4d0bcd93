package postgres

import (
	"context"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device for a user.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) findOne(ctx context.Context, column string, value any) (*entity.Device, error) {
	var deviceM model.DeviceModel
	if err := repo.db.WithContext(ctx).Where(column+" = ?", value).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrapf(err, "failed to find device by %s", column)
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindByCode(ctx context.Context, code string) (*entity.Device, error) {
	return repo.findOne(ctx, "code", code)
}

func (repo *deviceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, "user_id", userID)
}

func (repo *deviceRepository) updateField(ctx context.Context, code, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("code = ?", code).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update device %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) UpdateMood(ctx context.Context, code string, mood entity.Mood) error {
	return repo.updateField(ctx, code, "mood", mood.String())
}

func (repo *deviceRepository) UpdateNickname(ctx context.Context, code, nickname string) error {
	return repo.updateField(ctx, code, "nickname", nickname)
}

func (repo *deviceRepository) AssignBundle(ctx context.Context, code, bundleID string) error {
	return repo.updateField(ctx, code, "assigned_bundle", bundleID)
}

// RepairUserLinks points users.device_id at the device that references the user and clears
// back-references to devices that no longer point back.
func (repo *deviceRepository) RepairUserLinks(ctx context.Context) (int64, error) {
	linked := repo.db.WithContext(ctx).Exec(`
		UPDATE users u SET device_id = d.id, updated_at = NOW()
		FROM devices d
		WHERE d.user_id = u.id AND u.device_id IS DISTINCT FROM d.id`)
	if linked.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(linked.Error, "failed to link users to devices")
	}

	cleared := repo.db.WithContext(ctx).Exec(`
		UPDATE users u SET device_id = NULL, updated_at = NOW()
		WHERE u.device_id IS NOT NULL AND NOT EXISTS (
			SELECT 1 FROM devices d WHERE d.id = u.device_id AND d.user_id = u.id
		)`)
	if cleared.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(cleared.Error, "failed to clear dangling device links")
	}

	return linked.RowsAffected + cleared.RowsAffected, nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:             data.ID,
		Code:           data.Code,
		Nickname:       data.Nickname,
		Mood:           entity.Mood(data.Mood),
		UserID:         data.UserID,
		AssignedBundle: data.AssignedBundle,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	mood := data.Mood
	if mood == "" {
		mood = entity.MoodDefault
	}

	return &model.DeviceModel{
		ID:             data.ID,
		Code:           data.Code,
		Nickname:       data.Nickname,
		Mood:           mood.String(),
		UserID:         data.UserID,
		AssignedBundle: data.AssignedBundle,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
