package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields for creating an account.
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone,omitempty"`
}

// LoginInput carries the credentials for signing in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is the result of a successful register or login.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UpdateProfileInput carries a partial profile patch.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UserQuery carries the listing filters accepted by FindAll.
type UserQuery struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Role  string `json:"role,omitempty"`
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users []*entity.User `json:"users"`
	Total int64          `json:"total"`
	Pages int64          `json:"pages"`
}

// UserUsecase defines account and identity operations.
type UserUsecase interface {
	// Register creates an account and signs the caller in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	// Login verifies credentials and records the sign-in time.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// RefreshToken mints a fresh token pair from a valid refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)
	FindAll(ctx context.Context, query *UserQuery) (*UserPage, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, input *ChangePasswordInput) error
	// SetRole is an admin operation.
	SetRole(ctx context.Context, id uuid.UUID, role string) (*entity.User, error)
	// SetActive enables or disables an account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.User, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
