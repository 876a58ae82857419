// Package worker runs the mail queue consumer next to a small health server.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"homesec/config"
	"homesec/internal/delivery"
	"homesec/internal/delivery/middleware"
	"homesec/internal/delivery/worker/handler"
	"homesec/internal/domain/lifecycle"
	"homesec/internal/errors"
	"homesec/internal/infra/mail"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *echo.Echo
	consumer *mail.Consumer
	handler  *handler.MailHandler

	// consumeCtx ends when the app stops, independently of the ctx passed to Serve.
	consumeCtx context.Context
	cancel     context.CancelFunc
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	MailHandler *handler.MailHandler
}

// NewServer creates the mail worker: a queue consumer plus an HTTP health endpoint
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Mail == nil || params.Cfg.Mail.AMQP.URL == "" {
		return nil, errors.New("mail.amqp.url is required for the mail worker")
	}

	e := echo.New()
	e.HideBanner = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	consumeCtx, cancel := context.WithCancel(context.Background())

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
		consumer: mail.NewConsumer(
			params.Cfg.Mail.AMQP.URL,
			mail.QueueName(params.Cfg.Mail),
			params.Cfg.Worker.Prefetch,
			params.Logger,
		),
		handler:    params.MailHandler,
		consumeCtx: consumeCtx,
		cancel:     cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the queue consumer and then the health server
func (s *workerServer) Serve(ctx context.Context) error {
	go func() {
		if err := s.consumer.Run(s.consumeCtx, s.handler.Handle); err != nil {
			s.logger.Error("Mail consumer stopped", slog.Any("error", err))
		}
	}()

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop halts the consumer and gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
