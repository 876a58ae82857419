// Package mail delivers transactional email through a configurable provider.
package mail

import (
	"context"
	"log/slog"

	"homesec/config"
	"homesec/internal/domain/service"
	"homesec/internal/errors"
	"homesec/internal/infra/metrics"

	"go.uber.org/fx"
)

const (
	ProviderNoop = "noop"
	ProviderHTTP = "http"
	ProviderAMQP = "amqp"
)

// noopMailer accepts every message without sending it. Used when mail is disabled.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.logger.Debug("[NoopMailer] Mail delivery disabled, skipping",
		slog.String("category", msg.Category),
	)

	return nil
}

func (m *noopMailer) Close() error {
	return nil
}

// MailerParams holds dependencies for Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates a Mailer based on configuration
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: logger}, nil
	}

	var mailer service.Mailer
	var err error

	switch cfg.Provider {
	case ProviderHTTP:
		mailer, err = NewHTTPMailer(cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using HTTP mailer", slog.String("endpoint", cfg.HTTP.Endpoint))

	case ProviderAMQP:
		mailer, err = NewAMQPMailer(cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using AMQP mail queue", slog.String("queue", cfg.AMQP.Queue))

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	mailer = &instrumentedMailer{provider: cfg.Provider, next: mailer}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Mailer")

			return mailer.Close()
		},
	})

	return mailer, nil
}

// NewDeliveryMailer creates the HTTP mailer used by the queue worker. The worker
// always delivers through the HTTP API whatever provider the API enqueues with.
func NewDeliveryMailer(params MailerParams) (service.Mailer, error) {
	if params.Config.Mail == nil {
		return nil, errors.New("mail section is required for the mail worker")
	}

	mailer, err := NewHTTPMailer(params.Config.Mail, params.Logger)
	if err != nil {
		return nil, err
	}
	mailer = &instrumentedMailer{provider: ProviderHTTP, next: mailer}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mailer.Close()
		},
	})

	return mailer, nil
}

// instrumentedMailer counts deliveries per provider and category.
type instrumentedMailer struct {
	provider string
	next     service.Mailer
}

func (m *instrumentedMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	err := m.next.Send(ctx, msg)
	metrics.IncrementMailDeliveries(m.provider, msg.Category, err)

	return err
}

func (m *instrumentedMailer) Close() error {
	return m.next.Close()
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)

// WorkerModule provides the mailer the queue worker delivers with
//
//nolint:gochecknoglobals
var WorkerModule = fx.Options(
	fx.Provide(NewDeliveryMailer),
)
