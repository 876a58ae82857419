package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/service"
	"homesec/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Guard        usecase.Guard
	Logger       *slog.Logger
}

// AuthMiddleware resolves the bearer token into the caller identity.
// Ownership checks belong to the usecases.
type AuthMiddleware struct {
	tokenService service.TokenService
	guard        usecase.Guard
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		guard:        params.Guard,
		logger:       params.Logger,
	}
}

// Authenticate rejects requests without a valid, unrevoked bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return m.reject(c, "missing bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.tokenService.Validate(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return m.reject(c, "invalid token")
		}

		deliverycontext.SetIdentity(c, identity, token)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.UserID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireRole rejects authenticated callers outside roles before the body is read.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := deliverycontext.GetIdentity(c)
			if err := m.guard.RequireRole(caller, roles...); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// RequireBearer only demands that a bearer token is present. Logout uses it so that
// revoking an expired or already revoked token still succeeds.
func (m *AuthMiddleware) RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return m.reject(c, "missing bearer token")
		}

		deliverycontext.SetAccessToken(c, token)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return domainerrors.ErrUnauthenticated.WrapMessage(reason)
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
