package impl

import (
	"context"
	"testing"
	"time"

	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/domain/service"
	"homesec/internal/errors"
	"homesec/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, serviceFixtures) {
	fx := newServiceFixtures(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Mailer:       fx.mailer,
		Config:       fx.config,
		Logger:       fx.logger,
	})

	return srv, fx
}

func storedClient() *entity.User {
	return &entity.User{
		ID:           clientID,
		Name:         "Ana Pérez",
		Email:        "ana@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleClient,
		Status:       entity.StatusActive,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(30 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(storedClient(), nil)
	fx.hasher.EXPECT().Check("Secret123!", "stored-hash").Return(true)
	fx.tokens.EXPECT().
		Issue(entity.Identity{UserID: clientID, Email: "ana@example.com", Role: entity.RoleClient}).
		Return("signed-token", expiresAt, nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{Email: "  ANA@Example.com ", Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(storedClient(), nil)
		fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("suspended account", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		user := storedClient()
		user.Status = entity.StatusSuspended
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "Secret123!"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	srv, fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, dbErr)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout_AlwaysSucceeds(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.tokens.EXPECT().Revoke(ctx, "tok").Return(nil)

		assert.NoError(t, srv.Logout(ctx, "tok"))
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.tokens.EXPECT().Revoke(ctx, "tok").Return(errors.New("redis down"))

		assert.NoError(t, srv.Logout(ctx, "tok"))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength("NewSecret1!").Return(nil)
		fx.hasher.EXPECT().Hash("NewSecret1!").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, clientID, "new-hash").Return(nil)

		err := srv.ChangePassword(ctx, clientIdentity(), &usecase.ChangePasswordInput{NewPassword: "NewSecret1!"})

		assert.NoError(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength("short").
			Return(domainerrors.ErrInvalidInput.WithDetails("La contraseña debe tener al menos 8 caracteres"))

		err := srv.ChangePassword(ctx, clientIdentity(), &usecase.ChangePasswordInput{NewPassword: "short"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		srv, _ := createTestAuthService(t)

		err := srv.ChangePassword(ctx, nil, &usecase.ChangePasswordInput{NewPassword: "NewSecret1!"})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("account vanished", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength("NewSecret1!").Return(nil)
		fx.hasher.EXPECT().Hash("NewSecret1!").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, clientID, "new-hash").Return(repository.ErrUserNotFound)

		err := srv.ChangePassword(ctx, clientIdentity(), &usecase.ChangePasswordInput{NewPassword: "NewSecret1!"})

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestAuthService_RecoverPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email succeeds without writes", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		assert.NoError(t, srv.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "Ghost@Example.com"}))
	})

	t.Run("mails the new temporary password", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(storedClient(), nil)
		fx.hasher.EXPECT().GenerateTemporary().Return("Tmp#Pass1234", nil)
		fx.hasher.EXPECT().Hash("Tmp#Pass1234").Return("tmp-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, clientID, "tmp-hash").Return(nil)
		fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.MailMessage")).
			Run(func(_ context.Context, msg *service.MailMessage) {
				assert.Equal(t, "ana@example.com", msg.To)
				assert.Equal(t, recoverySubject, msg.Subject)
				assert.Equal(t, recoveryCategory, msg.Category)
				assert.Contains(t, msg.Text, "Tmp#Pass1234")
			}).
			Return(nil)

		assert.NoError(t, srv.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "ana@example.com"}))
	})

	t.Run("delivery failure", func(t *testing.T) {
		srv, fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(storedClient(), nil)
		fx.hasher.EXPECT().GenerateTemporary().Return("Tmp#Pass1234", nil)
		fx.hasher.EXPECT().Hash("Tmp#Pass1234").Return("tmp-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, clientID, "tmp-hash").Return(nil)
		fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp 503"))

		err := srv.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "ana@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailDeliveryFailed)
	})
}
