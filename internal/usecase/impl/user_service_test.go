package impl

import (
	"context"
	"testing"

	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	mockRepo "peeko/internal/mocks/repository"
	mockSvc "peeko/internal/mocks/service"
	"peeko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   *userService
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
	codes     []string
}

func createTestUserService(t *testing.T, codes ...string) *userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		QRService: qrService,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*userService)

	fx := &userServiceFixtures{
		service:   srv,
		userRepo:  userRepo,
		qrService: qrService,
		codes:     codes,
	}

	srv.generateCode = func() (string, error) {
		if len(fx.codes) == 0 {
			return "", errors.New("no test codes left")
		}
		code := fx.codes[0]
		fx.codes = fx.codes[1:]

		return code, nil
	}

	return fx
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t, "A1B2C3")

	ctx := context.Background()
	input := &usecase.UserProfileInput{
		ExternalID: "user_2abc",
		Username:   "alice",
		Email:      " Alice@Example.com ",
	}

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().ExistsByCode(ctx, "A1B2C3").Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, created, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "user_2abc", user.ExternalID)
	assert.Equal(t, "A1B2C3", user.UserCode)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_CreateUser_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := newTestUser("user_2abc", "A1B2C3")

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(existing, nil)

	user, created, err := fx.service.CreateUser(ctx, &usecase.UserProfileInput{ExternalID: "user_2abc"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, user)
}

func TestUserService_CreateUser_RetriesCodeCollisions(t *testing.T) {
	fx := createTestUserService(t, "AAAAAA", "BBBBBB", "CCCCCC")

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().ExistsByCode(ctx, "AAAAAA").Return(true, nil)
	fx.userRepo.EXPECT().ExistsByCode(ctx, "BBBBBB").Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.UserCode == "BBBBBB" })).
		Return(repository.ErrDuplicateUserCode)
	fx.userRepo.EXPECT().ExistsByCode(ctx, "CCCCCC").Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.UserCode == "CCCCCC" })).
		Return(nil)

	user, created, err := fx.service.CreateUser(ctx, &usecase.UserProfileInput{ExternalID: "user_2abc"})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "CCCCCC", user.UserCode)
}

func TestUserService_CreateUser_CodeExhausted(t *testing.T) {
	fx := createTestUserService(t, "AAAAAA", "AAAAAA", "AAAAAA")

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().ExistsByCode(ctx, "AAAAAA").Return(true, nil).Times(3)

	user, created, err := fx.service.CreateUser(ctx, &usecase.UserProfileInput{ExternalID: "user_2abc"})

	assert.Nil(t, user)
	assert.False(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrUserCodeExhausted)
}

func TestUserService_CreateUser_ConcurrentInsertReturnsWinner(t *testing.T) {
	fx := createTestUserService(t, "A1B2C3")

	ctx := context.Background()
	winner := newTestUser("user_2abc", "FFFFFF")

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.EXPECT().ExistsByCode(ctx, "A1B2C3").Return(false, nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateExternalID)
	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(winner, nil).Once()

	user, created, err := fx.service.CreateUser(ctx, &usecase.UserProfileInput{ExternalID: "user_2abc"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "FFFFFF", user.UserCode)
}

func TestUserService_CreateUser_MissingExternalID(t *testing.T) {
	fx := createTestUserService(t)

	_, _, err := fx.service.CreateUser(context.Background(), &usecase.UserProfileInput{ExternalID: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	updated := newTestUser("user_2abc", "A1B2C3")
	updated.FirstName = "Alice"

	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ExternalID == "user_2abc" && u.FirstName == "Alice"
		})).
		Return(nil)
	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(updated, nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UserProfileInput{ExternalID: "user_2abc", FirstName: " Alice "})

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UserProfileInput{ExternalID: "user_missing"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetByCode_NormalizesCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := newTestUser("user_2abc", "A1B2C3")

	fx.userRepo.EXPECT().FindByCode(ctx, "A1B2C3").Return(expected, nil)

	user, err := fx.service.GetByCode(ctx, " a1b2c3")

	require.NoError(t, err)
	assert.Same(t, expected, user)
}

func TestUserService_SearchUsers(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantQuery string
		wantCall  bool
	}{
		{name: "empty query", query: "", wantCall: false},
		{name: "single character", query: " a ", wantCall: false},
		{name: "two characters", query: " al ", wantQuery: "al", wantCall: true},
		{name: "code fragment", query: "A1B2", wantQuery: "A1B2", wantCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()

			if tt.wantCall {
				fx.userRepo.EXPECT().
					Search(ctx, tt.wantQuery, 20).
					Return([]*entity.User{newTestUser("user_2abc", "A1B2C3")}, nil)
			}

			users, err := fx.service.SearchUsers(ctx, tt.query)

			require.NoError(t, err)
			assert.NotNil(t, users)
			if tt.wantCall {
				assert.Len(t, users, 1)
			} else {
				assert.Empty(t, users)
			}
		})
	}
}

func TestUserService_AddAnimationBundle(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser("user_2abc", "A1B2C3")
	withBundle := newTestUser("user_2abc", "A1B2C3")
	withBundle.ID = user.ID
	withBundle.AnimationBundles = []string{"bundle-1"}

	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(user, nil).Once()
	fx.userRepo.EXPECT().AddAnimationBundle(ctx, user.ID, "bundle-1").Return(nil)
	fx.userRepo.EXPECT().FindByExternalID(ctx, "user_2abc").Return(withBundle, nil).Once()

	result, err := fx.service.AddAnimationBundle(ctx, "user_2abc", " bundle-1 ")

	require.NoError(t, err)
	assert.Equal(t, []string{"bundle-1"}, result.AnimationBundles)
}

func TestUserService_AddAnimationBundle_EmptyBundle(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.AddAnimationBundle(context.Background(), "user_2abc", " ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetUserCodeQR(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.userRepo.EXPECT().FindByCode(ctx, "A1B2C3").Return(newTestUser("user_2abc", "A1B2C3"), nil)
	fx.qrService.EXPECT().GenerateUserCodeQR("A1B2C3").Return(png, nil)

	result, err := fx.service.GetUserCodeQR(ctx, "a1b2c3")

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestUserService_GetUserCodeQR_UnknownCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByCode(ctx, "ZZZZZZ").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUserCodeQR(ctx, "ZZZZZZ")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
