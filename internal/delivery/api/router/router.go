// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homesec/config"
	"homesec/internal/delivery/api/middleware"
	"homesec/internal/delivery/api/router/handler"
	"homesec/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ClientHandler  *handler.ClientHandler
	HouseHandler   *handler.HouseHandler
	SensorHandler  *handler.SensorHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	clientHandler  *handler.ClientHandler
	houseHandler   *handler.HouseHandler
	sensorHandler  *handler.SensorHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		clientHandler:  params.ClientHandler,
		houseHandler:   params.HouseHandler,
		sensorHandler:  params.SensorHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Admin-only routes are role checked before their body is bound; the usecases repeat the check.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Public routes, throttled per client address
	e.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
	e.POST("/clientes/recuperar", r.authHandler.RecoverPassword, r.rateLimiter.Limit)

	e.POST("/logout", r.authHandler.Logout, r.authMiddleware.RequireBearer)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

		adminGroup.POST("/clientes", r.clientHandler.CreateClient, adminOnly)
		adminGroup.POST("/clientes/completo", r.clientHandler.CreateClientComplete, adminOnly)
		adminGroup.GET("/clientes", r.clientHandler.ListClients, adminOnly)
		adminGroup.GET("/clientes/buscar", r.clientHandler.SearchClients, adminOnly)
		adminGroup.POST("/clientes/:id/casas", r.houseHandler.AttachHouse, adminOnly)
		adminGroup.GET("/clientes/:id/casas", r.houseHandler.ListClientHouses, adminOnly)

		// Owners reach their own sensors through these routes too
		adminGroup.POST("/clientes/:uid/casas/:hid/sensores", r.sensorHandler.AttachSensor)
		adminGroup.GET("/clientes/:uid/casas/:hid/sensores", r.sensorHandler.ListSensorsOfHouse)
	}

	clientGroup := e.Group("/clientes")
	clientGroup.Use(r.authMiddleware.Authenticate)
	{
		clientGroup.GET("/perfil", r.clientHandler.GetProfile)
		clientGroup.PUT("/actualizar-contraseña", r.authHandler.ChangePassword)
		clientGroup.GET("/:id/casas", r.houseHandler.ListHouseSummaries)
		clientGroup.GET("/casas/:correo", r.houseHandler.ListHousesWithSensors)
		clientGroup.GET("/casas/:uid/:hid/sensores", r.sensorHandler.ListSensorsOfHouse)
	}
}
