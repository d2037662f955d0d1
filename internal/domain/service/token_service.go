package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the bearer token claims the API relies on. Tokens are minted by the login service.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens.
type TokenService interface {
	// GenerateToken signs an access token for a user. Used by tooling and tests.
	GenerateToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
