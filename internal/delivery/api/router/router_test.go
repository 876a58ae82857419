package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"homesec/config"
	"homesec/internal/delivery/api/middleware"
	"homesec/internal/delivery/api/router/handler"
	"homesec/internal/delivery/api/validator"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	mockrepository "homesec/internal/mocks/repository"
	mockservice "homesec/internal/mocks/service"
	mockusecase "homesec/internal/mocks/usecase"
	"homesec/internal/usecase"
	"homesec/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo     *echo.Echo
	tokens   *mockservice.MockTokenService
	authUC   *mockusecase.MockAuthUsecase
	clientUC *mockusecase.MockClientUsecase
	houseUC  *mockusecase.MockHouseUsecase
	sensorUC *mockusecase.MockSensorUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{},
		Metrics:   &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	f := &routerFixture{
		echo:     echo.New(),
		tokens:   mockservice.NewMockTokenService(t),
		authUC:   mockusecase.NewMockAuthUsecase(t),
		clientUC: mockusecase.NewMockClientUsecase(t),
		houseUC:  mockusecase.NewMockHouseUsecase(t),
		sensorUC: mockusecase.NewMockSensorUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
		ClientHandler:  handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: f.clientUC, Logger: logger}),
		HouseHandler:   handler.NewHouseHandler(handler.HouseHandlerParams{HouseUC: f.houseUC, Logger: logger}),
		SensorHandler:  handler.NewSensorHandler(handler.SensorHandlerParams{SensorUC: f.sensorUC, Logger: logger}),
		HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: f.tokens,
			Guard:        impl.NewGuard(impl.GuardParams{HouseRepo: mockrepository.NewMockHouseRepository(t)}),
			Logger:       logger,
		}),
		RateLimiter:    middleware.NewRateLimiter(middleware.RateLimiterParams{Config: cfg, Logger: logger}),
		Config:         cfg,
	})
	r.RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) serve(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRegisterRoutes_Table(t *testing.T) {
	f := newRouterFixture(t)

	var got []string
	for _, route := range f.echo.Routes() {
		if route.Method == echo.RouteNotFound {
			continue
		}
		got = append(got, route.Method+" "+route.Path)
	}
	sort.Strings(got)

	want := []string{
		"GET /admin/clientes",
		"GET /admin/clientes/:id/casas",
		"GET /admin/clientes/:uid/casas/:hid/sensores",
		"GET /admin/clientes/buscar",
		"GET /clientes/:id/casas",
		"GET /clientes/casas/:correo",
		"GET /clientes/casas/:uid/:hid/sensores",
		"GET /clientes/perfil",
		"GET /health",
		"GET /metrics",
		"POST /admin/clientes",
		"POST /admin/clientes/:id/casas",
		"POST /admin/clientes/:uid/casas/:hid/sensores",
		"POST /admin/clientes/completo",
		"POST /clientes/recuperar",
		"POST /login",
		"POST /logout",
		"PUT /clientes/actualizar-contraseña",
	}
	assert.ElementsMatch(t, want, got)
}

func TestRegisterRoutes_ProtectedRoutesNeedToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{"/admin/clientes", "/clientes/perfil", "/clientes/casas/ana@example.com"} {
		rec := f.serve(http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRegisterRoutes_LogoutAcceptsRevokedToken(t *testing.T) {
	f := newRouterFixture(t)

	f.authUC.EXPECT().Logout(mock.Anything, "stale").Return(nil).Once()

	rec := f.serve(http.MethodPost, "/logout", "stale")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_DispatchesToHandlers(t *testing.T) {
	f := newRouterFixture(t)
	identity := &entity.Identity{UserID: "u1", Email: "ana@example.com", Role: entity.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.EXPECT().Validate(mock.Anything, "good").Return(identity, nil)

	t.Run("houses by email win over the id route", func(t *testing.T) {
		f.houseUC.EXPECT().
			ListHousesWithSensors(mock.Anything, identity, "ana@example.com").
			Return([]*entity.HouseDetail{}, nil).
			Once()

		rec := f.serve(http.MethodGet, "/clientes/casas/ana@example.com", "good")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("house summaries by user id", func(t *testing.T) {
		f.houseUC.EXPECT().
			ListHouseSummaries(mock.Anything, identity, "u1").
			Return([]entity.HouseSummary{}, nil).
			Once()

		rec := f.serve(http.MethodGet, "/clientes/u1/casas", "good")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("client sensor alias", func(t *testing.T) {
		f.sensorUC.EXPECT().
			ListSensorsOfHouse(mock.Anything, identity, "u1", "h1").
			Return([]*entity.Sensor{}, nil).
			Once()

		rec := f.serve(http.MethodGet, "/clientes/casas/u1/h1/sensores", "good")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("search is not captured by the id route", func(t *testing.T) {
		admin := &entity.Identity{UserID: "a1", Email: "admin@example.com", Role: entity.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
		f.tokens.EXPECT().Validate(mock.Anything, "admin").Return(admin, nil).Once()
		f.clientUC.EXPECT().
			SearchClients(mock.Anything, admin, "ana").
			Return(nil, nil).
			Once()

		rec := f.serve(http.MethodGet, "/admin/clientes/buscar?termino=ana", "admin")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("percent encoded password route", func(t *testing.T) {
		f.authUC.EXPECT().
			ChangePassword(mock.Anything, identity, &usecase.ChangePasswordInput{NewPassword: "Nueva#Clave1"}).
			Return(nil).
			Once()

		req := httptest.NewRequest(http.MethodPut, "/clientes/actualizar-contrase%C3%B1a",
			strings.NewReader(`{"nueva_contraseña":"Nueva#Clave1"}`))
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegisterRoutes_AdminRoutesForbidClientsBeforeReadingBody(t *testing.T) {
	f := newRouterFixture(t)
	identity := &entity.Identity{UserID: "64b7f0c2a1b2c3d4e5f60718", Email: "ana@example.com", Role: entity.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.EXPECT().Validate(mock.Anything, "client").Return(identity, nil)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{method: http.MethodPost, target: "/admin/clientes", body: `{"nombre":"x"}`},
		{method: http.MethodPost, target: "/admin/clientes/completo", body: `{"cliente":{},"casas":[{"sensores":[{"tipo_sensor":"laser"}]}]}`},
		{method: http.MethodGet, target: "/admin/clientes"},
		{method: http.MethodGet, target: "/admin/clientes/buscar?termino=a"},
		{method: http.MethodPost, target: "/admin/clientes/64b7f0c2a1b2c3d4e5f60718/casas", body: `{}`},
		{method: http.MethodGet, target: "/admin/clientes/64b7f0c2a1b2c3d4e5f60718/casas"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderAuthorization, "Bearer client")
			if tt.body != "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			rec := httptest.NewRecorder()
			f.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "FORBIDDEN")
		})
	}
}

func TestRegisterRoutes_AttachSensorChecksOwnershipBeforeType(t *testing.T) {
	f := newRouterFixture(t)
	identity := &entity.Identity{UserID: "aaaaaaaaaaaaaaaaaaaaaaaa", Email: "ana@example.com", Role: entity.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.EXPECT().Validate(mock.Anything, "client").Return(identity, nil)

	f.sensorUC.EXPECT().
		AttachSensor(mock.Anything, identity, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Identity, input *usecase.AttachSensorInput) (*usecase.AttachSensorOutput, error) {
			assert.Equal(t, "unknown", input.Type)

			return nil, domainerrors.ErrForbidden
		}).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/admin/clientes/bbbbbbbbbbbbbbbbbbbbbbbb/casas/cccccccccccccccccccccccc/sensores",
		strings.NewReader(`{"tipo_sensor":"unknown","sensor_data":{"ubicacion":"sala"}}`))
	req.Header.Set(echo.HeaderAuthorization, "Bearer client")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
