package repository

import (
	"context"

	"kunstcollectie/internal/domain/entity"

	"github.com/google/uuid"
)

// ArtworkRepository provides owner-scoped access to catalogued artworks.
// Every method takes the owner's ID; records of other owners behave as
// not-found.
type ArtworkRepository interface {
	// FindByID retrieves a single artwork of the given owner.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Artwork, error)

	// ListByOwner returns a page of the owner's artworks ordered by creation
	// time, newest first, plus the total count.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Artwork, int64, error)

	// Create persists a new artwork for its OwnerID.
	Create(ctx context.Context, artwork *entity.Artwork) error

	// Update modifies an existing artwork of the given owner.
	Update(ctx context.Context, artwork *entity.Artwork) error

	// Delete removes an artwork of the given owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ArtworkTypeRepository provides owner-scoped access to artwork categories.
type ArtworkTypeRepository interface {
	// FindByID retrieves a single artwork type of the given owner.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.ArtworkType, error)

	// ListByOwner returns all artwork types of the owner ordered by name.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ArtworkType, error)

	// Create persists a new artwork type for its OwnerID.
	Create(ctx context.Context, artworkType *entity.ArtworkType) error

	// Update modifies an existing artwork type of the given owner.
	Update(ctx context.Context, artworkType *entity.ArtworkType) error

	// Delete removes an artwork type of the given owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
