// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"homesec/internal/domain/entity"
)

// TokenTypeBearer is reported alongside every issued access token.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the caller's new password.
type ChangePasswordInput struct {
	NewPassword string
}

// RecoverPasswordInput identifies the account asking for a new temporary password.
type RecoverPasswordInput struct {
	Email string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase defines session and credential operations.
type AuthUsecase interface {
	// Login fails with InvalidCredentials for an unknown email and for a wrong password alike.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the token. It always succeeds.
	Logout(ctx context.Context, token string) error

	// ChangePassword replaces the caller's password after a strength check.
	ChangePassword(ctx context.Context, caller *entity.Identity, input *ChangePasswordInput) error

	// RecoverPassword mails a new temporary password. Unknown emails succeed without any write.
	RecoverPassword(ctx context.Context, input *RecoverPasswordInput) error
}
