package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"homesec/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore shares the revocation set between replicas. Keys carry the
// token's remaining lifetime as TTL so Redis expires them on its own.
type RedisStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed revocation set.
func NewRedisStore(client *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Revoke stores a digest of token until expiresAt.
func (s *RedisStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.key(token), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set revoked token")
	}

	return nil
}

// IsRevoked reports whether a digest of token is present.
func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis exists revoked token")
	}

	return n > 0, nil
}

// Prune is a no-op because entries expire through their TTL.
func (s *RedisStore) Prune(context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))

	return s.prefix + ":" + hex.EncodeToString(sum[:])
}
