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

// artworkTypeRepository implements repository.ArtworkTypeRepository using GORM.
type artworkTypeRepository struct {
	db *gorm.DB
}

// NewArtworkTypeRepository is the constructor for artworkTypeRepository.
func NewArtworkTypeRepository(db *gorm.DB) repository.ArtworkTypeRepository {
	return &artworkTypeRepository{db: db}
}

// FindByID retrieves a single artwork type of the given owner.
func (repo *artworkTypeRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.ArtworkType, error) {
	var typeM model.ArtworkTypeModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&typeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtworkTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork type by id")
	}

	return toArtworkTypeDomain(&typeM), nil
}

// ListByOwner returns all artwork types of the owner ordered by name.
func (repo *artworkTypeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ArtworkType, error) {
	var typeMs []model.ArtworkTypeModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&typeMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list artwork types")
	}

	types := make([]*entity.ArtworkType, 0, len(typeMs))
	for i := range typeMs {
		types = append(types, toArtworkTypeDomain(&typeMs[i]))
	}

	return types, nil
}

// Create persists a new artwork type for its OwnerID. The per-owner name
// uniqueness constraint maps to the conflict domain error.
func (repo *artworkTypeRepository) Create(ctx context.Context, artworkType *entity.ArtworkType) error {
	typeM := fromArtworkTypeDomain(artworkType)

	if err := repo.db.WithContext(ctx).Create(typeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrArtworkTypeExists.WrapMessage("type name already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required type information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create artwork type")
	}

	artworkType.ID = typeM.ID
	artworkType.CreatedAt = typeM.CreatedAt
	artworkType.UpdatedAt = typeM.UpdatedAt

	return nil
}

// Update modifies an existing artwork type of the given owner.
func (repo *artworkTypeRepository) Update(ctx context.Context, artworkType *entity.ArtworkType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArtworkTypeModel{}).
		Where("id = ? AND owner_id = ?", artworkType.ID, artworkType.OwnerID).
		Updates(map[string]any{
			"name":        artworkType.Name,
			"description": artworkType.Description,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrArtworkTypeExists.WrapMessage("type name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update artwork type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkTypeNotFound
	}

	return nil
}

// Delete removes an artwork type of the given owner. Artworks referencing the
// type keep their rows; the FK is set null by the schema.
func (repo *artworkTypeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ArtworkTypeModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete artwork type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkTypeNotFound
	}

	return nil
}

// toArtworkTypeDomain converts a GORM ArtworkTypeModel to a domain entity.
func toArtworkTypeDomain(data *model.ArtworkTypeModel) *entity.ArtworkType {
	if data == nil {
		return nil
	}

	return &entity.ArtworkType{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromArtworkTypeDomain converts a domain entity to a GORM ArtworkTypeModel.
func fromArtworkTypeDomain(data *entity.ArtworkType) *model.ArtworkTypeModel {
	if data == nil {
		return nil
	}

	return &model.ArtworkTypeModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
	}
}
