package entity

import "time"

// Identity is the caller resolved from a validated access token.
type Identity struct {
	UserID    string
	Email     string
	Role      Role
	ExpiresAt time.Time
}

// IsAdmin reports whether the caller holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
