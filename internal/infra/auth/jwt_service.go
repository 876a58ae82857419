package auth

import (
	"context"
	"time"

	"homesec/config"
	"homesec/internal/domain/entity"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// JWTParams defines the dependencies of the token service.
type JWTParams struct {
	fx.In

	Config      *config.Config
	Revocations service.RevocationStore
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	revocations  service.RevocationStore
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(params JWTParams) (service.TokenService, error) {
	if params.Config.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if params.Revocations == nil {
		return nil, errors.New("revocation store must be provided")
	}

	ttl := 30 * time.Minute
	if params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
		ttl = params.Config.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(params.Config.SecretKey.Access),
		accessTTL:    ttl,
		revocations:  params.Revocations,
		now:          time.Now,
	}, nil
}

// Issue signs an access token whose subject is the user's email.
func (s *jwtService) Issue(identity entity.Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.accessTTL)

	claims := service.Claims{
		Role:   identity.Role.String(),
		UserID: identity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return token, expiresAt, nil
}

// Validate verifies signature and expiry, requires a complete payload and
// rejects tokens found in the revocation set.
func (s *jwtService) Validate(ctx context.Context, tokenString string) (*entity.Identity, error) {
	if tokenString == "" {
		return nil, service.ErrInvalidToken
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, "parse token")
	}

	role := entity.Role(claims.Role)
	if claims.Subject == "" || claims.UserID == "" || !role.IsValid() {
		return nil, errors.Wrap(service.ErrInvalidToken, "incomplete payload")
	}

	revoked, err := s.revocations.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, errors.Wrap(err, "check revocation")
	}
	if revoked {
		return nil, errors.Wrap(service.ErrInvalidToken, "token revoked")
	}

	return &entity.Identity{
		UserID:    claims.UserID,
		Email:     claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke adds the token to the revocation set until it would have expired.
// Tokens that cannot be parsed or have already expired need no entry.
func (s *jwtService) Revoke(ctx context.Context, tokenString string) error {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}

	if !claims.ExpiresAt.After(s.now()) {
		return nil
	}

	if err := s.revocations.Revoke(ctx, tokenString, claims.ExpiresAt.Time); err != nil {
		return errors.Wrap(err, "revoke token")
	}

	return nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.accessSecret, nil
}
