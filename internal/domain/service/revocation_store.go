package service

import (
	"context"
	"time"
)

// RevocationStore is the set of explicitly invalidated tokens consulted on every validation.
type RevocationStore interface {
	// Revoke records token until expiresAt. Re-adding a token is a no-op.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	// IsRevoked reports whether token was revoked and has not been pruned.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Prune drops entries whose tokens have expired and returns how many were removed.
	Prune(ctx context.Context) (int, error)
}
