package postgres

import (
	"context"
	"time"

	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordResetRepository implements repository.PasswordResetRepository.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a new reset token record.
func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a reset record by its stored digest.
func (repo *passwordResetRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&resetM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPasswordResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset by token hash")
	}

	return toPasswordResetDomain(&resetM), nil
}

// Consume marks a reset record as redeemed. The consumed_at guard makes
// redemption single-use even under concurrent confirm requests.
func (repo *passwordResetRepository) Consume(ctx context.Context, id uuid.UUID, consumedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", consumedAt)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume password reset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPasswordResetNotFound
	}

	return nil
}

// DeleteExpired removes records whose expiry is before the given time.
func (repo *passwordResetRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.PasswordResetModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired password resets")
	}

	return result.RowsAffected, nil
}

// toPasswordResetDomain converts a GORM model to a domain entity.
func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		ID:         data.ID,
		UserID:     data.UserID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromPasswordResetDomain converts a domain entity to a GORM model.
func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
	}
}
