package seed

import (
	"context"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// EnsureAdmin creates the bootstrap admin account when seeding is enabled
// and no account with the configured email exists yet. It is idempotent.
func EnsureAdmin(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher, cfg *config.SeedConfig) error {
	if cfg == nil || !cfg.Admin.Enabled {
		return nil
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return errors.New("admin seed requires email and password")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))

	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing admin")
	}

	hash, err := hasher.Hash(cfg.Admin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		FirstName:    cfg.Admin.FirstName,
		LastName:     cfg.Admin.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if admin.FirstName == "" {
		admin.FirstName = "Admin"
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have won the race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil
		}

		return errors.Wrap(err, "failed to create admin account")
	}

	return nil
}
