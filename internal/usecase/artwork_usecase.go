package usecase

import (
	"context"

	"kunstcollectie/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateArtworkInput defines the data required to catalogue an artwork.
type CreateArtworkInput struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Artist        string     `json:"artist" validate:"max=255"`
	Year          int        `json:"year" validate:"omitempty,gte=0"`
	Description   string     `json:"description"`
	Location      string     `json:"location" validate:"max=255"`
	PurchasePrice float64    `json:"purchasePrice" validate:"gte=0"`
	ImageURL      string     `json:"imageUrl" validate:"omitempty,url"`
	TypeID        *uuid.UUID `json:"typeId"`
}

// UpdateArtworkInput carries the full replacement state of an artwork.
type UpdateArtworkInput struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Artist        string     `json:"artist" validate:"max=255"`
	Year          int        `json:"year" validate:"omitempty,gte=0"`
	Description   string     `json:"description"`
	Location      string     `json:"location" validate:"max=255"`
	PurchasePrice float64    `json:"purchasePrice" validate:"gte=0"`
	ImageURL      string     `json:"imageUrl" validate:"omitempty,url"`
	TypeID        *uuid.UUID `json:"typeId"`
}

// ListArtworksInput carries paging parameters.
type ListArtworksInput struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// --- Output DTOs ---

// ArtworkOutput is the serializable projection of an artwork.
type ArtworkOutput struct {
	ID            uuid.UUID  `json:"id"`
	TypeID        *uuid.UUID `json:"typeId,omitempty"`
	Title         string     `json:"title"`
	Artist        string     `json:"artist,omitempty"`
	Year          int        `json:"year,omitempty"`
	Description   string     `json:"description,omitempty"`
	Location      string     `json:"location,omitempty"`
	PurchasePrice float64    `json:"purchasePrice,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
}

// NewArtworkOutput maps an artwork entity to its response projection.
func NewArtworkOutput(artwork *entity.Artwork) *ArtworkOutput {
	if artwork == nil {
		return nil
	}

	return &ArtworkOutput{
		ID:            artwork.ID,
		TypeID:        artwork.TypeID,
		Title:         artwork.Title,
		Artist:        artwork.Artist,
		Year:          artwork.Year,
		Description:   artwork.Description,
		Location:      artwork.Location,
		PurchasePrice: artwork.PurchasePrice,
		ImageURL:      artwork.ImageURL,
	}
}

// ArtworkListOutput is a page of artworks plus the total count.
type ArtworkListOutput struct {
	Artworks []*ArtworkOutput `json:"artworks"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// ArtworkUsecase defines owner-scoped catalogue operations. The ownerID is
// always the authenticated caller's identity, never client-supplied.
type ArtworkUsecase interface {
	CreateArtwork(ctx context.Context, ownerID uuid.UUID, input *CreateArtworkInput) (*ArtworkOutput, error)
	GetArtwork(ctx context.Context, ownerID, id uuid.UUID) (*ArtworkOutput, error)
	ListArtworks(ctx context.Context, ownerID uuid.UUID, input *ListArtworksInput) (*ArtworkListOutput, error)
	UpdateArtwork(ctx context.Context, ownerID, id uuid.UUID, input *UpdateArtworkInput) (*ArtworkOutput, error)
	DeleteArtwork(ctx context.Context, ownerID, id uuid.UUID) error
	GenerateShareCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error)
}
