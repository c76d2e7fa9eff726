// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing one registered account.
// The email acts as the natural login key and is unique across the system.
type User struct {
	ID           uuid.UUID `json:"id"`    // The unique identifier for the user, assigned by the store.
	Name         string    `json:"name"`  // The user's display name, set at registration.
	Email        string    `json:"email"` // The user's login email. Matched exactly (case-sensitive).
	PasswordHash string    `json:"-"`     // The bcrypt-hashed credential. Never serialized to callers.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
