// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"peeko/config"
	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/domain/service"
	"peeko/internal/errors"
	"peeko/internal/usecase"

	"go.uber.org/fx"
)

// minSearchQueryLength is the shortest trimmed query that reaches the store.
const minSearchQueryLength = 2

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	qrService    service.QRCodeService
	searchLimit  int
	codeAttempts int
	generateCode func() (string, error)
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		qrService:    params.QRService,
		searchLimit:  params.Config.Social.SearchLimit,
		codeAttempts: params.Config.Social.UserCodeAttempts,
		generateCode: generateUserCode,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser provisions a user for an identity-provider account and allocates its user code.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.UserProfileInput) (*entity.User, bool, error) {
	externalID := strings.TrimSpace(input.ExternalID)
	if externalID == "" {
		return nil, false, domainerrors.ErrValidationFailed.WrapMessage("external id is required")
	}

	existing, err := srv.userRepo.FindByExternalID(ctx, externalID)
	if err == nil {
		srv.log(ctx).Debug("User already provisioned", slog.String("externalID", externalID))

		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up user by external id")
	}

	for attempt := 1; attempt <= srv.codeAttempts; attempt++ {
		code, err := srv.generateCode()
		if err != nil {
			return nil, false, err
		}

		taken, err := srv.userRepo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to check user code availability")
		}
		if taken {
			continue
		}

		user := newUserFromProfile(input)
		user.ExternalID = externalID
		user.UserCode = code

		err = srv.userRepo.Create(ctx, user)
		switch {
		case err == nil:
			srv.log(ctx).Info("User created", slog.String("externalID", externalID), slog.String("userCode", code))

			return user, true, nil
		case errors.Is(err, repository.ErrDuplicateUserCode):
			srv.log(ctx).Debug("User code collided on insert, retrying", slog.Int("attempt", attempt))

			continue
		case errors.Is(err, repository.ErrDuplicateExternalID):
			winner, findErr := srv.userRepo.FindByExternalID(ctx, externalID)
			if findErr != nil {
				return nil, false, errors.Wrap(findErr, "failed to load concurrently created user")
			}

			return winner, false, nil
		default:
			return nil, false, errors.Wrap(err, "failed to create user")
		}
	}

	srv.log(ctx).Error("Exhausted user code attempts", slog.String("externalID", externalID), slog.Int("attempts", srv.codeAttempts))

	return nil, false, domainerrors.ErrUserCodeExhausted
}

// UpdateProfile overwrites the identity-provider fields of an existing user.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UserProfileInput) (*entity.User, error) {
	user := newUserFromProfile(input)
	user.ExternalID = strings.TrimSpace(input.ExternalID)

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, translateUserError(err, "failed to update user profile")
	}

	return srv.GetByExternalID(ctx, user.ExternalID)
}

func (srv *userService) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByExternalID(ctx, strings.TrimSpace(externalID))
	if err != nil {
		return nil, translateUserError(err, "failed to find user by external id")
	}

	return user, nil
}

func (srv *userService) GetByCode(ctx context.Context, code string) (*entity.User, error) {
	user, err := srv.userRepo.FindByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, translateUserError(err, "failed to find user by code")
	}

	return user, nil
}

// SearchUsers matches users by name or code.
func (srv *userService) SearchUsers(ctx context.Context, query string) ([]*entity.User, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchQueryLength {
		return []*entity.User{}, nil
	}

	users, err := srv.userRepo.Search(ctx, query, srv.searchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// AddAnimationBundle unlocks bundleID for the user. Adding an owned bundle is a no-op.
func (srv *userService) AddAnimationBundle(ctx context.Context, externalID, bundleID string) (*entity.User, error) {
	bundleID = strings.TrimSpace(bundleID)
	if bundleID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("bundle id is required")
	}

	user, err := srv.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.AddAnimationBundle(ctx, user.ID, bundleID); err != nil {
		return nil, translateUserError(err, "failed to add animation bundle")
	}

	return srv.GetByExternalID(ctx, externalID)
}

// GetUserCodeQR renders the pairing QR code for an existing user code.
func (srv *userService) GetUserCodeQR(ctx context.Context, code string) ([]byte, error) {
	user, err := srv.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateUserCodeQR(user.UserCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user code QR")
	}

	return png, nil
}

func newUserFromProfile(input *usecase.UserProfileInput) *entity.User {
	return &entity.User{
		Username:    strings.TrimSpace(input.Username),
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	}
}

// translateUserError maps repository misses to the public USER_NOT_FOUND error.
func translateUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, message)
}
