// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines password hashing, verification and temporary password issuance.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Empty input is rejected.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A malformed hash never matches.
	Check(password, hash string) bool

	// ValidatePasswordStrength enforces the configured password policy on user-chosen passwords.
	ValidatePasswordStrength(password string) error

	// GenerateTemporary returns a random one-time password drawn from letters, digits and punctuation.
	GenerateTemporary() (string, error)
}
