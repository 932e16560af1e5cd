package middleware

import (
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bazaar/internal/delivery/http/response"
)

const (
	contextKeyUserID = "userID"
	contextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		userID, role, err := m.parseAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyRole, role)

		return next(c)
	}
}

// OptionalAuthenticate validates the token when one is present but lets
// anonymous requests through. Public listings use it to widen visibility
// for admins.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		userID, role, err := m.parseAccessToken(tokenString)
		if err != nil {
			// A bad token on a public endpoint is treated as anonymous.
			return next(c)
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyRole, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// Admins pass every role check. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role information missing")
			}

			if role != requiredRole && role != entity.RoleAdmin.String() {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// parseAccessToken validates the token signature and extracts the subject
// and role claims.
func (m *AuthMiddleware) parseAccessToken(tokenString string) (uuid.UUID, string, error) {
	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return uuid.Nil, "", errTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errTokenInvalid
	}

	// Refresh tokens must not pass as access tokens.
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return uuid.Nil, "", errTokenInvalid
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", errTokenInvalid
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, "", errTokenInvalid
	}

	role, _ := claims["role"].(string)

	return userID, role, nil
}

var errTokenInvalid = echo.NewHTTPError(401, "invalid token")

// bearerToken extracts the Bearer token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole returns the authenticated user's role set by Authenticate.
func GetRole(c echo.Context) (string, bool) {
	role, ok := c.Get(contextKeyRole).(string)

	return role, ok
}

// IsAdmin reports whether the current request carries the admin role.
func IsAdmin(c echo.Context) bool {
	role, ok := GetRole(c)

	return ok && role == entity.RoleAdmin.String()
}
