// Package repository defines the persistence interfaces of the domain layer.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"kunstcollectie/internal/domain/entity"
	"kunstcollectie/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories so use cases can branch on
// not-found without depending on the persistence layer.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrArtworkNotFound       = errors.New("artwork not found")
	ErrArtworkTypeNotFound   = errors.New("artwork type not found")
	ErrPasswordResetNotFound = errors.New("password reset token not found")
)

// UserRepository provides access to the user store.
type UserRepository interface {
	// FindByID retrieves a single user by unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. The entity is updated in place with the
	// generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored credential digest of a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// UpdateRole changes the authorization level of a user.
	UpdateRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)
}
