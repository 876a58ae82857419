// Package redis provides the shared Redis client used by the revocation set and the rate limiter.
package redis

import (
	"context"
	"log/slog"
	"time"

	"homesec/config"
	"homesec/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	connectAttempts  = 5
	connectBaseDelay = 100 * time.Millisecond
	pingTimeout      = 2 * time.Second
)

// Params defines the dependencies of the Redis client.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis when a redis section with an address is configured.
// It returns a nil client otherwise so optional consumers can degrade.
func New(params Params) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured")

		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			backoff := retry.WithMaxRetries(connectAttempts, retry.NewExponential(connectBaseDelay))
			err := retry.Do(ctx, backoff, func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
				defer cancel()

				if err := client.Ping(pingCtx).Err(); err != nil {
					params.Logger.Warn("Redis ping failed, retrying", slog.Any("error", err))

					return retry.RetryableError(err)
				}

				return nil
			})
			if err != nil {
				return errors.Wrap(err, "connect redis")
			}

			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
