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

type firmwareRepository struct {
	db *gorm.DB
}

// NewFirmwareRepository is the constructor for firmwareRepository.
func NewFirmwareRepository(db *gorm.DB) repository.FirmwareRepository {
	return &firmwareRepository{db: db}
}

func (repo *firmwareRepository) Create(ctx context.Context, version *entity.FirmwareVersion) error {
	versionM := &model.FirmwareVersionModel{
		ID:          version.ID,
		Name:        version.Name,
		Link:        version.Link,
		Number:      version.Number,
		Description: version.Description,
	}
	if versionM.ID == uuid.Nil {
		versionM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(versionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFirmwareNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create firmware version")
	}

	version.ID = versionM.ID
	version.CreatedAt = versionM.CreatedAt
	version.UpdatedAt = versionM.UpdatedAt

	return nil
}

func (repo *firmwareRepository) List(ctx context.Context) ([]*entity.FirmwareVersion, error) {
	var versionModels []*model.FirmwareVersionModel
	if err := repo.db.WithContext(ctx).Order("number DESC").Find(&versionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list firmware versions")
	}

	versions := make([]*entity.FirmwareVersion, 0, len(versionModels))
	for _, versionM := range versionModels {
		versions = append(versions, toFirmwareDomain(versionM))
	}

	return versions, nil
}

func (repo *firmwareRepository) FindLatest(ctx context.Context) (*entity.FirmwareVersion, error) {
	var versionM model.FirmwareVersionModel
	if err := repo.db.WithContext(ctx).Order("number DESC").First(&versionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFirmwareNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest firmware version")
	}

	return toFirmwareDomain(&versionM), nil
}

func toFirmwareDomain(data *model.FirmwareVersionModel) *entity.FirmwareVersion {
	return &entity.FirmwareVersion{
		ID:          data.ID,
		Name:        data.Name,
		Link:        data.Link,
		Number:      data.Number,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
