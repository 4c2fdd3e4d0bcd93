package impl

import (
	"context"
	"testing"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	mockRepo "peeko/internal/mocks/repository"
	"peeko/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type firmwareServiceFixtures struct {
	service      usecase.FirmwareUsecase
	firmwareRepo *mockRepo.MockFirmwareRepository
}

func createTestFirmwareService(t *testing.T) firmwareServiceFixtures {
	firmwareRepo := mockRepo.NewMockFirmwareRepository(t)

	return firmwareServiceFixtures{
		service:      NewFirmwareService(FirmwareServiceParams{FirmwareRepo: firmwareRepo, Logger: newDiscardLogger()}),
		firmwareRepo: firmwareRepo,
	}
}

func TestFirmwareService_PublishVersion(t *testing.T) {
	fx := createTestFirmwareService(t)

	ctx := context.Background()

	fx.firmwareRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.FirmwareVersion) bool {
			return v.Name == "1.4.0" && v.Number == 14 && v.Link == "https://cdn.example.com/fw/14.bin"
		})).
		Return(nil)

	version, err := fx.service.PublishVersion(ctx, &usecase.PublishFirmwareInput{
		Name:   " 1.4.0 ",
		Link:   "https://cdn.example.com/fw/14.bin",
		Number: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, 14, version.Number)
}

func TestFirmwareService_PublishVersion_Errors(t *testing.T) {
	t.Run("duplicate number", func(t *testing.T) {
		fx := createTestFirmwareService(t)
		ctx := context.Background()

		fx.firmwareRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FirmwareVersion")).Return(repository.ErrDuplicateFirmwareNumber)

		_, err := fx.service.PublishVersion(ctx, &usecase.PublishFirmwareInput{Name: "1.4.0", Link: "https://x", Number: 14})

		assert.ErrorIs(t, err, domainerrors.ErrFirmwareVersionExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestFirmwareService(t)

		_, err := fx.service.PublishVersion(context.Background(), &usecase.PublishFirmwareInput{Name: "1.4.0"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestFirmwareService_LatestVersion(t *testing.T) {
	fx := createTestFirmwareService(t)

	ctx := context.Background()
	latest := &entity.FirmwareVersion{Name: "1.5.0", Number: 15}

	fx.firmwareRepo.EXPECT().FindLatest(ctx).Return(latest, nil).Once()
	fx.firmwareRepo.EXPECT().FindLatest(ctx).Return(nil, repository.ErrFirmwareNotFound).Once()

	version, err := fx.service.LatestVersion(ctx)
	require.NoError(t, err)
	assert.Same(t, latest, version)

	_, err = fx.service.LatestVersion(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrFirmwareNotFound)
}

func TestFirmwareService_ListVersions(t *testing.T) {
	fx := createTestFirmwareService(t)

	ctx := context.Background()
	versions := []*entity.FirmwareVersion{{Number: 15}, {Number: 14}}

	fx.firmwareRepo.EXPECT().List(ctx).Return(versions, nil)

	result, err := fx.service.ListVersions(ctx)

	require.NoError(t, err)
	assert.Equal(t, versions, result)
}
