package repository

import (
	"context"
	"time"

	"kunstcollectie/internal/domain/entity"

	"github.com/google/uuid"
)

// PasswordResetRepository stores single-use password recovery tokens.
// Only token digests are persisted; lookups are always by digest.
type PasswordResetRepository interface {
	// Create persists a new reset token record.
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindByTokenHash retrieves a reset record by its stored digest.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error)

	// Consume marks a reset record as redeemed at the given time.
	Consume(ctx context.Context, id uuid.UUID, consumedAt time.Time) error

	// DeleteExpired removes records whose expiry is before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
