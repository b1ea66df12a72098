package impl

import (
	"context"
	"log/slog"

	deliverycontext "kunstcollectie/internal/delivery/context"
	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// artworkTypeService implements the ArtworkTypeUsecase interface.
type artworkTypeService struct {
	typeRepo repository.ArtworkTypeRepository
	logger   *slog.Logger
}

// ArtworkTypeServiceParams holds dependencies for artworkTypeService.
type ArtworkTypeServiceParams struct {
	fx.In

	TypeRepo repository.ArtworkTypeRepository
	Logger   *slog.Logger
}

// NewArtworkTypeService is the constructor for artworkTypeService.
func NewArtworkTypeService(params ArtworkTypeServiceParams) usecase.ArtworkTypeUsecase {
	return &artworkTypeService{
		typeRepo: params.TypeRepo,
		logger:   params.Logger,
	}
}

func (srv *artworkTypeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateArtworkType creates a new category for the owner.
func (srv *artworkTypeService) CreateArtworkType(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateArtworkTypeInput) (*usecase.ArtworkTypeOutput, error) {
	artworkType := &entity.ArtworkType{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.typeRepo.Create(ctx, artworkType); err != nil {
		srv.log(ctx).Warn("Failed to create artwork type", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create artwork type")
	}

	return usecase.NewArtworkTypeOutput(artworkType), nil
}

// ListArtworkTypes returns all categories of the owner.
func (srv *artworkTypeService) ListArtworkTypes(ctx context.Context, ownerID uuid.UUID) ([]*usecase.ArtworkTypeOutput, error) {
	types, err := srv.typeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artwork types")
	}

	outputs := make([]*usecase.ArtworkTypeOutput, 0, len(types))
	for _, artworkType := range types {
		outputs = append(outputs, usecase.NewArtworkTypeOutput(artworkType))
	}

	return outputs, nil
}

// UpdateArtworkType renames or redescribes one of the owner's categories.
func (srv *artworkTypeService) UpdateArtworkType(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateArtworkTypeInput) (*usecase.ArtworkTypeOutput, error) {
	artworkType := &entity.ArtworkType{
		ID:          id,
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.typeRepo.Update(ctx, artworkType); err != nil {
		if errors.Is(err, repository.ErrArtworkTypeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArtworkTypeNotFound, "artwork type update failed")
		}

		return nil, errors.Wrap(err, "failed to update artwork type")
	}

	updated, err := srv.typeRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload artwork type after update")
	}

	return usecase.NewArtworkTypeOutput(updated), nil
}

// DeleteArtworkType removes one of the owner's categories.
func (srv *artworkTypeService) DeleteArtworkType(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.typeRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrArtworkTypeNotFound) {
			return errors.Wrap(domainerrors.ErrArtworkTypeNotFound, "artwork type delete failed")
		}

		return errors.Wrap(err, "failed to delete artwork type")
	}

	return nil
}
