// Package entity contains the core business objects of the catalogue,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. The PasswordHash field holds the only stored
// form of a credential and must never leave the service in a response body.
type User struct {
	ID           uuid.UUID // Unique identifier for the account.
	Email        string    // Login identifier, unique across all accounts.
	Name         string    // Display name shown in the catalogue UI.
	PasswordHash string    // bcrypt digest of the credential; never serialized.
	Role         Role      // Coarse-grained authorization label.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
