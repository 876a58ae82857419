// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"homesec/config"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/domain/service"
	"homesec/internal/errors"
	"homesec/internal/infra/metrics"
	"homesec/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		metrics.IncrementAuthAttempts("invalid_credentials")
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		metrics.IncrementAuthAttempts("error")
		srv.log(ctx).Error("Failed to load user for login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsActive() {
		metrics.IncrementAuthAttempts("inactive")
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "account not active"), slog.String("status", string(user.Status)))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		metrics.IncrementAuthAttempts("invalid_credentials")
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, expiresAt, err := srv.tokenService.Issue(entity.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		metrics.IncrementAuthAttempts("error")
		srv.log(ctx).Error("Failed to issue access token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternal, "failed to issue access token")
	}

	metrics.IncrementAuthAttempts("success")
	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID))
	user.PasswordHash = ""

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Logout revokes the token. Revocation problems are logged, never surfaced.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.tokenService.Revoke(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to revoke access token", slog.Any("error", err))

		return nil
	}

	metrics.IncrementTokenRevocations()
	srv.log(ctx).Debug("Access token revoked")

	return nil
}

// ChangePassword replaces the caller's password hash.
func (srv *authService) ChangePassword(ctx context.Context, caller *entity.Identity, input *usecase.ChangePasswordInput) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		srv.log(ctx).Warn("Password validation failed", slog.String("userID", caller.UserID), slog.Any("error", err))

		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("userID", caller.UserID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternal, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, caller.UserID, hash); err != nil {
		srv.log(ctx).Warn("Failed to update password", slog.String("userID", caller.UserID), slog.Any("error", err))

		return errors.Wrap(toAppError(err, "Usuario no encontrado"), "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", caller.UserID))

	return nil
}

// RecoverPassword stores a new temporary password and mails it to the account.
func (srv *authService) RecoverPassword(ctx context.Context, input *usecase.RecoverPasswordInput) error {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password recovery requested for unknown email", slog.String("email", email))

		return nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user for password recovery", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to find user by email")
	}

	temporary, err := srv.hasher.GenerateTemporary()
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternal, "failed to generate temporary password")
	}

	hash, err := srv.hasher.Hash(temporary)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternal, "failed to hash temporary password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		srv.log(ctx).Error("Failed to store temporary password", slog.String("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(toAppError(err, "Usuario no encontrado"), "failed to store temporary password")
	}

	if err := srv.mailer.Send(ctx, recoveryMessage(ctx, user.Email, temporary)); err != nil {
		srv.log(ctx).Error("Failed to deliver recovery email", slog.String("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailDeliveryFailed, err.Error())
	}

	srv.log(ctx).Info("Temporary password issued", slog.String("userID", user.ID))

	return nil
}
