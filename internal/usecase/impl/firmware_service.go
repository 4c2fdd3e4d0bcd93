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

	"go.uber.org/fx"
)

type firmwareService struct {
	firmwareRepo repository.FirmwareRepository
	logger       *slog.Logger
}

// FirmwareServiceParams holds dependencies for FirmwareService, injected by Fx.
type FirmwareServiceParams struct {
	fx.In

	FirmwareRepo repository.FirmwareRepository
	Logger       *slog.Logger
}

// NewFirmwareService creates a new firmware service instance
func NewFirmwareService(params FirmwareServiceParams) usecase.FirmwareUsecase {
	return &firmwareService{
		firmwareRepo: params.FirmwareRepo,
		logger:       params.Logger,
	}
}

func (srv *firmwareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *firmwareService) PublishVersion(ctx context.Context, input *usecase.PublishFirmwareInput) (*entity.FirmwareVersion, error) {
	version := &entity.FirmwareVersion{
		Name:        strings.TrimSpace(input.Name),
		Link:        strings.TrimSpace(input.Link),
		Number:      input.Number,
		Description: strings.TrimSpace(input.Description),
	}
	if version.Name == "" || version.Link == "" || version.Number <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, link and a positive number are required")
	}

	if err := srv.firmwareRepo.Create(ctx, version); err != nil {
		if errors.Is(err, repository.ErrDuplicateFirmwareNumber) {
			return nil, domainerrors.ErrFirmwareVersionExists
		}

		return nil, errors.Wrap(err, "failed to publish firmware version")
	}

	srv.log(ctx).Info("Firmware version published", slog.Int("number", version.Number), slog.String("name", version.Name))

	return version, nil
}

func (srv *firmwareService) ListVersions(ctx context.Context) ([]*entity.FirmwareVersion, error) {
	versions, err := srv.firmwareRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list firmware versions")
	}

	return versions, nil
}

// LatestVersion returns the version with the highest number.
func (srv *firmwareService) LatestVersion(ctx context.Context) (*entity.FirmwareVersion, error) {
	version, err := srv.firmwareRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrFirmwareNotFound) {
			return nil, domainerrors.ErrFirmwareNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest firmware version")
	}

	return version, nil
}
