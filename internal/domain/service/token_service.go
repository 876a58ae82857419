package service

import (
	"context"
	"time"

	"homesec/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken covers bad signatures, incomplete payloads, revoked and expired tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims of an access token. The subject is the user's email.
type Claims struct {
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues, validates and revokes signed access tokens.
type TokenService interface {
	// Issue signs a token for identity valid for the configured TTL.
	Issue(identity entity.Identity) (token string, expiresAt time.Time, err error)

	// Validate verifies the token and resolves the caller. It never touches the document store.
	Validate(ctx context.Context, token string) (*entity.Identity, error)

	// Revoke invalidates the token. Revoking an expired, malformed or already revoked token succeeds.
	Revoke(ctx context.Context, token string) error
}
