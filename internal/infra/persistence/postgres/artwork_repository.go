package postgres

import (
	"context"

	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// artworkRepository implements repository.ArtworkRepository using GORM.
// Every query constrains on owner_id so records of other owners behave as
// not-found.
type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository is the constructor for artworkRepository.
func NewArtworkRepository(db *gorm.DB) repository.ArtworkRepository {
	return &artworkRepository{db: db}
}

// FindByID retrieves a single artwork of the given owner.
func (repo *artworkRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Artwork, error) {
	var artworkM model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&artworkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtworkNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork by id")
	}

	return toArtworkDomain(&artworkM), nil
}

// ListByOwner returns a page of the owner's artworks, newest first, plus the
// total count.
func (repo *artworkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Artwork, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ArtworkModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count artworks")
	}

	var artworkMs []model.ArtworkModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&artworkMs).Error

	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list artworks")
	}

	artworks := make([]*entity.Artwork, 0, len(artworkMs))
	for i := range artworkMs {
		artworks = append(artworks, toArtworkDomain(&artworkMs[i]))
	}

	return artworks, total, nil
}

// Create persists a new artwork for its OwnerID.
func (repo *artworkRepository) Create(ctx context.Context, artwork *entity.Artwork) error {
	artworkM := fromArtworkDomain(artwork)

	if err := repo.db.WithContext(ctx).Create(artworkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork type reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required artwork information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create artwork")
	}

	artwork.ID = artworkM.ID
	artwork.CreatedAt = artworkM.CreatedAt
	artwork.UpdatedAt = artworkM.UpdatedAt

	return nil
}

// Update modifies an existing artwork of the given owner.
func (repo *artworkRepository) Update(ctx context.Context, artwork *entity.Artwork) error {
	artworkM := fromArtworkDomain(artwork)

	result := repo.db.WithContext(ctx).
		Model(&model.ArtworkModel{}).
		Where("id = ? AND owner_id = ?", artwork.ID, artwork.OwnerID).
		Updates(map[string]any{
			"type_id":        artworkM.TypeID,
			"title":          artworkM.Title,
			"artist":         artworkM.Artist,
			"year":           artworkM.Year,
			"description":    artworkM.Description,
			"location":       artworkM.Location,
			"purchase_price": artworkM.PurchasePrice,
			"image_url":      artworkM.ImageURL,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid artwork type reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update artwork")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkNotFound
	}

	return nil
}

// Delete removes an artwork of the given owner.
func (repo *artworkRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ArtworkModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete artwork")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkNotFound
	}

	return nil
}

// toArtworkDomain converts a GORM ArtworkModel to a domain Artwork entity.
func toArtworkDomain(data *model.ArtworkModel) *entity.Artwork {
	if data == nil {
		return nil
	}

	return &entity.Artwork{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		TypeID:        data.TypeID,
		Title:         data.Title,
		Artist:        data.Artist,
		Year:          data.Year,
		Description:   data.Description,
		Location:      data.Location,
		PurchasePrice: data.PurchasePrice,
		ImageURL:      data.ImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromArtworkDomain converts a domain Artwork entity to a GORM ArtworkModel.
func fromArtworkDomain(data *entity.Artwork) *model.ArtworkModel {
	if data == nil {
		return nil
	}

	return &model.ArtworkModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		TypeID:        data.TypeID,
		Title:         data.Title,
		Artist:        data.Artist,
		Year:          data.Year,
		Description:   data.Description,
		Location:      data.Location,
		PurchasePrice: data.PurchasePrice,
		ImageURL:      data.ImageURL,
	}
}
