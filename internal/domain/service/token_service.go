package service

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts the issuing and validation of authentication tokens.
type TokenService interface {
	// GenerateTokens creates an access and a refresh token for the given user.
	// The access token carries the user's role for stateless authorization.
	GenerateTokens(userID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
