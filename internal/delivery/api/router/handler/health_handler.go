package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *mongo.Database
	Logger *slog.Logger
}

// HealthHandler reports whether the service can reach its store.
type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	db := params.DB

	return &HealthHandler{
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
		logger: params.Logger,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthCheck pings the store and answers 503 when it is unreachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
