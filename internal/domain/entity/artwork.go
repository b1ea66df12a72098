package entity

import (
	"time"

	"github.com/google/uuid"
)

// Artwork is a catalogued piece owned by exactly one user. All repository
// access is scoped by OwnerID; a piece owned by another account behaves as
// if it does not exist.
type Artwork struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID  // Account that catalogued this piece.
	TypeID        *uuid.UUID // Optional reference to an ArtworkType of the same owner.
	Title         string
	Artist        string
	Year          int // Year of creation, 0 when unknown.
	Description   string
	Location      string // Where the piece is kept or displayed.
	PurchasePrice float64
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ArtworkType is a user-defined category for artworks (e.g. "schilderij",
// "beeld"). Names are unique per owner.
type ArtworkType struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
