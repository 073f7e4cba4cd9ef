package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/domain/service"
	mockRepo "laundrypro/internal/mocks/repository"
	mockSvc "laundrypro/internal/mocks/service"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Phone:     "+2348012345678",
		Email:     "amaka@example.com",
		Password:  "Password123!",
		FirstName: "Amaka",
		LastName:  "Obi",
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, input.Phone).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), string(entity.RoleCustomer)).
		Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, input.Phone, output.User.Phone)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Register_PhoneAlreadyTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Phone:    "+2348012345678",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, input.Phone).
		Return(&entity.User{ID: uuid.New(), Phone: input.Phone}, nil)

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Phone:    "+2348012345678",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, input.Phone).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Phone:        "+2348012345678",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, user.Phone).
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("Password123!", "hashed_password").
		Return(true)
	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, string(entity.RoleCustomer)).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Phone: user.Phone, Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.NotNil(t, output.User.LastLoginAt)
	assert.Equal(t, "access", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Phone:        "+2348012345678",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, user.Phone).
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("wrong", "hashed_password").
		Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Phone: user.Phone, Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownPhone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByPhone(ctx, "+2348000000000").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Phone: "+2348000000000", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Phone:        "+2348012345678",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	fx.userRepo.EXPECT().
		FindByPhone(ctx, user.Phone).
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("Password123!", "hashed_password").
		Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Phone: user.Phone, Password: "Password123!"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh").
		Return(&service.Claims{UserID: userID, Role: string(entity.RoleStaff)}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleStaff, IsActive: true}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, string(entity.RoleStaff)).
		Return("new_access", "new_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "old_refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), usecase.RefreshTokenInput{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_SubjectGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh").
		Return(&service.Claims{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "old_refresh"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_UpdateProfile_PartialChange(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:        userID,
		FirstName: "Amaka",
		LastName:  "Obi",
		Email:     "amaka@example.com",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	newFirst := "Adaeze"
	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{FirstName: &newFirst})
	require.NoError(t, err)
	assert.Equal(t, "Adaeze", updated.FirstName)
	assert.Equal(t, "Obi", updated.LastName)
	assert.Equal(t, "amaka@example.com", updated.Email)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePushToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdatePushToken(ctx, userID, "fcm-token-123").
		Return(nil)

	err := fx.service.UpdatePushToken(ctx, userID, "fcm-token-123")
	require.NoError(t, err)
}
