package usecase

import (
	"context"

	"kunstcollectie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateArtworkTypeInput defines the data required to create a category.
type CreateArtworkTypeInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateArtworkTypeInput carries the replacement state of a category.
type UpdateArtworkTypeInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// ArtworkTypeOutput is the serializable projection of an artwork type.
type ArtworkTypeOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// NewArtworkTypeOutput maps an artwork type entity to its response projection.
func NewArtworkTypeOutput(artworkType *entity.ArtworkType) *ArtworkTypeOutput {
	if artworkType == nil {
		return nil
	}

	return &ArtworkTypeOutput{
		ID:          artworkType.ID,
		Name:        artworkType.Name,
		Description: artworkType.Description,
	}
}

// ArtworkTypeUsecase defines owner-scoped category operations.
type ArtworkTypeUsecase interface {
	CreateArtworkType(ctx context.Context, ownerID uuid.UUID, input *CreateArtworkTypeInput) (*ArtworkTypeOutput, error)
	ListArtworkTypes(ctx context.Context, ownerID uuid.UUID) ([]*ArtworkTypeOutput, error)
	UpdateArtworkType(ctx context.Context, ownerID, id uuid.UUID, input *UpdateArtworkTypeInput) (*ArtworkTypeOutput, error)
	DeleteArtworkType(ctx context.Context, ownerID, id uuid.UUID) error
}
