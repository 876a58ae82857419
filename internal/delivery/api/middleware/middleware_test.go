package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homesec/config"
	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/service"
	"homesec/internal/errors"
	mockRepo "homesec/internal/mocks/repository"
	mockSvc "homesec/internal/mocks/service"
	"homesec/internal/usecase/impl"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer abc", token: "abc", ok: true},
		{header: "Bearer   ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
		{header: "abc", ok: false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/me", func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		token, _ := deliverycontext.GetAccessToken(c)

		return c.JSON(http.StatusOK, map[string]string{"user_id": identity.UserID, "token": token})
	}, auth.Authenticate)

	identity := &entity.Identity{UserID: "u1", Email: "ana@example.com", Role: entity.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}
	tokens.EXPECT().Validate(mock.Anything, "good").Return(identity, nil)
	tokens.EXPECT().Validate(mock.Anything, "revoked").Return(nil, errors.Wrap(service.ErrInvalidToken, "token revoked"))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"u1","token":"good"}`, rec.Body.String())
	})

	t.Run("revoked token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer revoked")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, domainerrors.KindUnauthenticated, decodeError(t, rec).Error.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		Guard:        impl.NewGuard(impl.GuardParams{HouseRepo: mockRepo.NewMockHouseRepository(t)}),
		Logger:       newDiscardLogger(),
	})
	e := newTestEcho()
	e.POST("/admin/clientes", func(c echo.Context) error {
		var body map[string]any
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bind"})
		}

		return c.NoContent(http.StatusCreated)
	}, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	client := &entity.Identity{UserID: "u1", Email: "ana@example.com", Role: entity.RoleClient, ExpiresAt: time.Now().Add(time.Hour)}
	admin := &entity.Identity{UserID: "a1", Email: "admin@example.com", Role: entity.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	tokens.EXPECT().Validate(mock.Anything, "client").Return(client, nil)
	tokens.EXPECT().Validate(mock.Anything, "admin").Return(admin, nil)

	post := func(token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/clientes", strings.NewReader(body))
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	t.Run("client with malformed body is forbidden", func(t *testing.T) {
		rec := post("client", `{"nombre":`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.KindForbidden, decodeError(t, rec).Error.Code)
	})

	t.Run("admin reaches the handler", func(t *testing.T) {
		rec := post("admin", `{"nombre":"Ana"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAuthMiddleware_RequireBearer(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/logout", func(c echo.Context) error {
		_, hasIdentity := deliverycontext.GetIdentity(c)
		token, _ := deliverycontext.GetAccessToken(c)

		return c.JSON(http.StatusOK, map[string]any{"token": token, "identity": hasIdentity})
	}, auth.RequireBearer)

	t.Run("token is passed through without validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer already-revoked")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"already-revoked","identity":false}`, rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorMiddleware_RendersKinds(t *testing.T) {
	e := newTestEcho()
	e.GET("/not-found", func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrNotFound.WithDetails("Casa no encontrada"), "lookup")
	})
	e.GET("/internal", func(c echo.Context) error {
		return domainerrors.NewDatabaseExecuteError(errors.New("socket closed"), "users.find")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("unexpected")
	})

	t.Run("client error keeps details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/not-found", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerrors.KindNotFound, body.Error.Code)
		assert.Equal(t, "Casa no encontrada", body.Error.Details)
	})

	t.Run("server error hides details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerrors.KindInternal, body.Error.Code)
		assert.Nil(t, body.Error.Details)
		assert.NotContains(t, rec.Body.String(), "socket closed")
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "unexpected")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.KindNotFound, decodeError(t, rec).Error.Code)
	})
}

func TestRateLimiter_Limit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{
			Enabled:        true,
			Capacity:       2,
			RefillTokens:   1,
			RefillInterval: time.Minute,
			TTL:            time.Hour,
			Prefix:         "rl",
		}},
		Logger: newDiscardLogger(),
		Redis:  client,
	})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, rl.Limit)

	call := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		return rec
	}

	assert.Equal(t, http.StatusNoContent, call().Code)
	assert.Equal(t, http.StatusNoContent, call().Code)

	blocked := call()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusNoContent, call().Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.SetError("LOADING")

	rl := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Capacity: 1, Prefix: "rl"}},
		Logger: newDiscardLogger(),
		Redis:  client,
	})

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, rl.Limit)

	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimiter_DisabledWithoutRedis(t *testing.T) {
	rl := NewRateLimiter(RateLimiterParams{
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Capacity: 1}},
		Logger: newDiscardLogger(),
	})

	assert.False(t, rl.enabled())
}
