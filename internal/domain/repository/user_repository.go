// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the unique email constraint is violated.
var ErrDuplicateEmail = errors.New("email already registered")

// UserFilter narrows and paginates user listings.
type UserFilter struct {
	Page  int
	Limit int
	Role  entity.Role
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
