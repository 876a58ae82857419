package handler

import (
	"log/slog"
	"net/http"
	"time"

	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, logout and password endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
		now:    time.Now,
	}
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   int64(out.ExpiresAt.Sub(h.now()).Seconds()),
	})
}

// Logout revokes the bearer token of the request.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := deliverycontext.GetAccessToken(c)
	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Sesión cerrada exitosamente"})
}

// ChangePassword replaces the caller's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	caller, _ := deliverycontext.GetIdentity(c)
	if err := h.authUC.ChangePassword(c.Request().Context(), caller, &usecase.ChangePasswordInput{NewPassword: req.NewPassword}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Contraseña actualizada correctamente"})
}

// RecoverPassword mails a new temporary password. The answer is the same whether or not the email exists.
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var req RecoverPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.authUC.RecoverPassword(c.Request().Context(), &usecase.RecoverPasswordInput{Email: req.Email}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{
		Message: "Si el correo está registrado, recibirás una contraseña temporal",
	})
}
