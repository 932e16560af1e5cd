package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	refreshSecret string
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		refreshSecret: params.Config.SecretKey.Refresh,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the caller in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and records the sign-in time.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt check is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected for disabled account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Any("userID", user.ID), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken mints a fresh token pair from a valid refresh token.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected for invalid token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (srv *userService) FindAll(ctx context.Context, query *usecase.UserQuery) (*usecase.UserPage, error) {
	page, limit := normalizePagination(query.Page, query.Limit, constants.DefaultLimit)

	filter := repository.UserFilter{
		Page:  page,
		Limit: limit,
		Role:  entity.Role(query.Role),
	}

	users, total, err := srv.userRepo.FindAll(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserPage{
		Users: users,
		Total: total,
		Pages: totalPages(total, limit),
	}, nil
}

func (srv *userService) FindOne(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

func (srv *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user profile", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordIncorrect
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		srv.log(ctx).Error("Failed to update password", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", id))

	return nil
}

func (srv *userService) SetRole(ctx context.Context, id uuid.UUID, role string) (*entity.User, error) {
	newRole := entity.Role(role)
	if !newRole.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + role)
	}

	user, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.UpdateRole(ctx, id, newRole); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}
	user.Role = newRole

	srv.log(ctx).Info("User role updated", slog.Any("userID", id), slog.String("role", role))

	return user, nil
}

func (srv *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.User, error) {
	user, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user active flag")
	}

	srv.log(ctx).Info("User active flag updated", slog.Any("userID", id), slog.Bool("active", active))

	return user, nil
}

func (srv *userService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User removed", slog.Any("userID", id))

	return nil
}
