// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"homesec/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an email is already registered, ignoring case.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidID is returned when an identifier cannot be converted to a store handle.
	ErrInvalidID = errors.New("invalid identifier")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by email, ignoring case.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// ListByRole returns every user holding role, without password hashes.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Search matches term as a case-insensitive substring of name or email among users holding role.
	Search(ctx context.Context, role entity.Role, term string) ([]*entity.User, error)

	// UpdatePassword overwrites the stored password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// PushHouse appends a house summary to the user's house index.
	PushHouse(ctx context.Context, id string, house entity.HouseSummary) error
}
