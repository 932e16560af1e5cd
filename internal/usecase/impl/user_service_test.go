package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	service := NewUserService(UserServiceParams{
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, m
}

func TestUserService_Register_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("s3cret-pass").
		Return("$2a$10$hash", nil)

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), entity.RoleUser).
		Return("access-token", "refresh-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Bello",
		Email:     "  Amina.Bello@Example.COM ",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "amina.bello@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.True(t, output.User.IsActive)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("s3cret-pass").
		Return("$2a$10$hash", nil)

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Amina",
		LastName:  "Bello",
		Email:     "amina.bello@example.com",
		Password:  "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "amina.bello@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "amina.bello@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         entity.RoleUser,
			IsActive:     true,
		}, nil)

	m.hasher.EXPECT().
		Check("s3cret-pass", "$2a$10$hash").
		Return(true)

	m.tokenService.EXPECT().
		GenerateTokens(userID, entity.RoleUser).
		Return("access-token", "refresh-token", nil)

	m.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "Amina.Bello@Example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotNil(t, output.User.LastLogin)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "amina.bello@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			PasswordHash: "$2a$10$hash",
			IsActive:     true,
		}, nil)

	m.hasher.EXPECT().
		Check("wrong-pass", "$2a$10$hash").
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "amina.bello@example.com",
		Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "amina.bello@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			PasswordHash: "$2a$10$hash",
			IsActive:     false,
		}, nil)

	m.hasher.EXPECT().
		Check("s3cret-pass", "$2a$10$hash").
		Return(true)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "amina.bello@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}, Valid: true}, nil)

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleVendor, IsActive: true}, nil)

	m.tokenService.EXPECT().
		GenerateTokens(userID, entity.RoleVendor).
		Return("new-access", "new-refresh", nil)

	output, err := service.RefreshToken(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateToken("garbage", "refresh-secret").
		Return(nil, errors.New("token signature is invalid"))

	output, err := service.RefreshToken(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_DisabledAccount(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}, Valid: true}, nil)

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: false}, nil)

	output, err := service.RefreshToken(ctx, "refresh-token")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "$2a$10$hash"}, nil)

	m.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	err := service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "$2a$10$old"}, nil)

	m.hasher.EXPECT().
		Check("old-pass", "$2a$10$old").
		Return(true)

	m.hasher.EXPECT().
		Hash("new-pass-123").
		Return("$2a$10$new", nil)

	m.userRepo.EXPECT().
		UpdatePassword(ctx, userID, "$2a$10$new").
		Return(nil)

	err := service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass-123",
	})
	require.NoError(t, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FirstName: "Amina", Phone: "0801"}, nil)

	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	phone := "08012345678"
	user, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "08012345678", user.Phone)
	assert.Equal(t, "Amina", user.FirstName)
}

func TestUserService_FindAll_Pagination(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindAll(ctx, repository.UserFilter{
			Page:  constants.DefaultPage,
			Limit: constants.DefaultLimit,
			Role:  entity.RoleVendor,
		}).
		Return([]*entity.User{{ID: uuid.New()}}, 21, nil)

	page, err := service.FindAll(ctx, &usecase.UserQuery{Role: entity.RoleVendor.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, int64(3), page.Pages)
}

func TestUserService_SetRole_Invalid(t *testing.T) {
	service, _ := newUserServiceForTest(t)

	user, err := service.SetRole(context.Background(), uuid.New(), "superuser")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SetRole_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	m.userRepo.EXPECT().
		UpdateRole(ctx, userID, entity.RoleAdmin).
		Return(nil)

	user, err := service.SetRole(ctx, userID, entity.RoleAdmin.String())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestUserService_SetActive_Disable(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)

	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.SetActive(ctx, userID, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserService_Remove_NotFound(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		Delete(ctx, userID).
		Return(repository.ErrUserNotFound)

	err := service.Remove(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
