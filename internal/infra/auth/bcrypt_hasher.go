// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"homesec/config"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinLength = 8
	defaultMaxLength = 72 // bcrypt ignores bytes past 72

	temporaryAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var errEmptyPassword = errors.New("password must not be empty")

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost       int
	tempLength int
	policy     config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{
		cost:       bcrypt.DefaultCost,
		tempLength: 12,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinLength,
			MaxLength:        defaultMaxLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}

	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			h.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.TemporaryPasswordLength > 0 {
			h.tempLength = cfg.Auth.TemporaryPasswordLength
		}
	}

	if cfg.PasswordStrength != nil {
		h.policy = *cfg.PasswordStrength
		if h.policy.MaxLength <= 0 || h.policy.MaxLength > defaultMaxLength {
			h.policy.MaxLength = defaultMaxLength
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
// Violations are reported as invalid input with the first failing rule as details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.policy.MinLength > 0 && len(password) < h.policy.MinLength {
		return weak("debe tener al menos %d caracteres", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return weak("no puede superar %d caracteres", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return weak("debe contener al menos una letra mayúscula")
	case h.policy.RequireLowercase && !hasLower:
		return weak("debe contener al menos una letra minúscula")
	case h.policy.RequireNumbers && !hasDigit:
		return weak("debe contener al menos un número")
	case h.policy.RequireSpecial && !hasSpecial:
		return weak("debe contener al menos un carácter especial")
	}

	return nil
}

// GenerateTemporary draws the configured number of characters uniformly from the temporary alphabet.
func (h *bcryptHasher) GenerateTemporary() (string, error) {
	limit := big.NewInt(int64(len(temporaryAlphabet)))

	var sb strings.Builder
	sb.Grow(h.tempLength)
	for range h.tempLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "rand.Int")
		}
		sb.WriteByte(temporaryAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

func weak(format string, args ...any) error {
	return domainerrors.ErrInvalidInput.WithDetails(
		"La contraseña " + fmt.Sprintf(format, args...),
	)
}
