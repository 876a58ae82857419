// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account of the platform, either an admin or a client.
// Identifiers are opaque strings; the persistence layer converts them to native handles.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"nombre"`
	Email        string         `json:"correo"`
	PasswordHash string         `json:"-"`
	Role         Role           `json:"rol"`
	Status       UserStatus     `json:"estado"`
	CreatedAt    time.Time      `json:"fecha_creacion"`
	Houses       []HouseSummary `json:"casas"`
}

// HasHouse reports whether the denormalized house index of the user lists houseID.
func (u *User) HasHouse(houseID string) bool {
	for _, h := range u.Houses {
		if h.ID == houseID {
			return true
		}
	}

	return false
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	// Accounts created before the status field existed have no status.
	return u.Status == "" || u.Status == StatusActive
}
