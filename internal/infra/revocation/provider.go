package revocation

import (
	"context"
	"log/slog"
	"time"

	"homesec/config"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ProviderParams defines the dependencies for creating the revocation store
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// NewRevocationStore selects the backend from revocation.provider and runs
// a periodic prune for backends that need one.
func NewRevocationStore(params ProviderParams) (service.RevocationStore, error) {
	cfg := params.Config.Revocation

	var store service.RevocationStore
	switch cfg.Provider {
	case "redis":
		if params.Redis == nil {
			return nil, errors.New("revocation provider redis requires a redis section")
		}
		store = NewRedisStore(params.Redis, cfg.KeyPrefix)
		params.Logger.Info("Using Redis revocation store", slog.String("prefix", cfg.KeyPrefix))

		return store, nil
	case "memory", "":
		store = NewMemoryStore()
		params.Logger.Info("Using in-memory revocation store",
			slog.Duration("prune_interval", cfg.PruneInterval),
		)
	default:
		return nil, errors.Errorf("unknown revocation provider: %s", cfg.Provider)
	}

	pruner := newPruner(store, cfg.PruneInterval, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			pruner.start()

			return nil
		},
		OnStop: func(context.Context) error {
			pruner.stop()

			return nil
		},
	})

	return store, nil
}

type pruner struct {
	store    service.RevocationStore
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func newPruner(store service.RevocationStore, interval time.Duration, logger *slog.Logger) *pruner {
	return &pruner{store: store, interval: interval, logger: logger}
}

func (p *pruner) start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := p.store.Prune(ctx)
				if err != nil {
					p.logger.Warn("Failed to prune revoked tokens", slog.Any("error", err))

					continue
				}
				if removed > 0 {
					p.logger.Debug("Pruned revoked tokens", slog.Int("removed", removed))
				}
			}
		}
	}()
}

func (p *pruner) stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}
