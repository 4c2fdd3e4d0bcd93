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

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice creates the device and links it to its owner in one transaction.
func (srv *deviceService) RegisterDevice(ctx context.Context, code, nickname string) (*entity.Device, error) {
	code = normalizeCode(code)

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		deviceRepo := repoFactory.DeviceRepo()

		owner, err := userRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCode
			}

			return errors.Wrap(err, "failed to find user by code")
		}

		if owner.HasDevice() {
			return domainerrors.ErrAlreadyPaired
		}

		device = &entity.Device{
			ID:       uuid.New(),
			Code:     owner.UserCode,
			Nickname: strings.TrimSpace(nickname),
			Mood:     entity.MoodDefault,
			UserID:   owner.ID,
		}

		if err := deviceRepo.Create(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDuplicateDevice) {
				return domainerrors.ErrAlreadyPaired
			}

			return errors.Wrap(err, "failed to create device")
		}

		if err := userRepo.SetDevice(ctx, owner.ID, device.ID); err != nil {
			return errors.Wrap(err, "failed to link device to user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Device paired", slog.String("code", device.Code), slog.Any("deviceID", device.ID))

	return device, nil
}

func (srv *deviceService) GetDevice(ctx context.Context, code string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, translateDeviceError(err, "failed to find device")
	}

	return device, nil
}

func (srv *deviceService) SetMood(ctx context.Context, code string, mood entity.Mood) (*entity.Device, error) {
	mood = entity.Mood(strings.ToUpper(strings.TrimSpace(string(mood))))
	if !mood.IsValid() {
		return nil, domainerrors.ErrInvalidMood.WrapMessage(string(mood))
	}

	return srv.update(ctx, code, "failed to update mood", func(code string) error {
		return srv.deviceRepo.UpdateMood(ctx, code, mood)
	})
}

func (srv *deviceService) RenameDevice(ctx context.Context, code, nickname string) (*entity.Device, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nickname is required")
	}

	return srv.update(ctx, code, "failed to rename device", func(code string) error {
		return srv.deviceRepo.UpdateNickname(ctx, code, nickname)
	})
}

func (srv *deviceService) AssignAnimationBundle(ctx context.Context, code, bundleID string) (*entity.Device, error) {
	bundleID = strings.TrimSpace(bundleID)
	if bundleID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("bundle id is required")
	}

	return srv.update(ctx, code, "failed to assign animation bundle", func(code string) error {
		return srv.deviceRepo.AssignBundle(ctx, code, bundleID)
	})
}

// update applies a single-field change and returns the stored device.
func (srv *deviceService) update(ctx context.Context, code, message string, apply func(code string) error) (*entity.Device, error) {
	code = normalizeCode(code)

	if err := apply(code); err != nil {
		return nil, translateDeviceError(err, message)
	}

	return srv.GetDevice(ctx, code)
}

func translateDeviceError(err error, message string) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}

	return errors.Wrap(err, message)
}
