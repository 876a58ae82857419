// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin provisions clients and houses.
	RoleAdmin Role = "admin"
	// RoleClient owns houses and their sensors.
	RoleClient Role = "cliente"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient:
		return true
	default:
		return false
	}
}

// UserStatus is the soft lifecycle state of an account. Users are never hard-deleted.
type UserStatus string

const (
	StatusActive    UserStatus = "activo"
	StatusInactive  UserStatus = "inactivo"
	StatusSuspended UserStatus = "suspendido"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	default:
		return false
	}
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
