package impl

import (
	"context"
	"log/slog"

	deliverycontext "kunstcollectie/internal/delivery/context"
	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	"kunstcollectie/internal/domain/service"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// artworkService implements the ArtworkUsecase interface.
type artworkService struct {
	artworkRepo repository.ArtworkRepository
	typeRepo    repository.ArtworkTypeRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ArtworkServiceParams holds dependencies for artworkService, injected by Fx.
type ArtworkServiceParams struct {
	fx.In

	ArtworkRepo repository.ArtworkRepository
	TypeRepo    repository.ArtworkTypeRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewArtworkService is the constructor for artworkService.
func NewArtworkService(params ArtworkServiceParams) usecase.ArtworkUsecase {
	return &artworkService{
		artworkRepo: params.ArtworkRepo,
		typeRepo:    params.TypeRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *artworkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateTypeReference checks that a referenced artwork type exists and
// belongs to the same owner.
func (srv *artworkService) validateTypeReference(ctx context.Context, ownerID uuid.UUID, typeID *uuid.UUID) error {
	if typeID == nil {
		return nil
	}

	if _, err := srv.typeRepo.FindByID(ctx, ownerID, *typeID); err != nil {
		if errors.Is(err, repository.ErrArtworkTypeNotFound) {
			return errors.Wrap(domainerrors.ErrArtworkTypeNotFound, "unknown artwork type")
		}

		return errors.Wrap(err, "failed to check artwork type")
	}

	return nil
}

// CreateArtwork catalogues a new piece for the owner.
func (srv *artworkService) CreateArtwork(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateArtworkInput) (*usecase.ArtworkOutput, error) {
	if err := srv.validateTypeReference(ctx, ownerID, input.TypeID); err != nil {
		return nil, err
	}

	artwork := &entity.Artwork{
		OwnerID:       ownerID,
		TypeID:        input.TypeID,
		Title:         input.Title,
		Artist:        input.Artist,
		Year:          input.Year,
		Description:   input.Description,
		Location:      input.Location,
		PurchasePrice: input.PurchasePrice,
		ImageURL:      input.ImageURL,
	}

	if err := srv.artworkRepo.Create(ctx, artwork); err != nil {
		srv.log(ctx).Warn("Failed to create artwork", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create artwork")
	}

	srv.log(ctx).Debug("Artwork created", slog.Any("artworkID", artwork.ID), slog.Any("ownerID", ownerID))

	return usecase.NewArtworkOutput(artwork), nil
}

// GetArtwork returns one of the owner's artworks.
func (srv *artworkService) GetArtwork(ctx context.Context, ownerID, id uuid.UUID) (*usecase.ArtworkOutput, error) {
	artwork, err := srv.artworkRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArtworkNotFound, "artwork lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load artwork")
	}

	return usecase.NewArtworkOutput(artwork), nil
}

// ListArtworks returns a page of the owner's catalogue.
func (srv *artworkService) ListArtworks(ctx context.Context, ownerID uuid.UUID, input *usecase.ListArtworksInput) (*usecase.ArtworkListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	artworks, total, err := srv.artworkRepo.ListByOwner(ctx, ownerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks")
	}

	outputs := make([]*usecase.ArtworkOutput, 0, len(artworks))
	for _, artwork := range artworks {
		outputs = append(outputs, usecase.NewArtworkOutput(artwork))
	}

	return &usecase.ArtworkListOutput{
		Artworks: outputs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateArtwork replaces the stored state of one of the owner's artworks.
func (srv *artworkService) UpdateArtwork(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateArtworkInput) (*usecase.ArtworkOutput, error) {
	if err := srv.validateTypeReference(ctx, ownerID, input.TypeID); err != nil {
		return nil, err
	}

	artwork := &entity.Artwork{
		ID:            id,
		OwnerID:       ownerID,
		TypeID:        input.TypeID,
		Title:         input.Title,
		Artist:        input.Artist,
		Year:          input.Year,
		Description:   input.Description,
		Location:      input.Location,
		PurchasePrice: input.PurchasePrice,
		ImageURL:      input.ImageURL,
	}

	if err := srv.artworkRepo.Update(ctx, artwork); err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArtworkNotFound, "artwork update failed")
		}

		return nil, errors.Wrap(err, "failed to update artwork")
	}

	updated, err := srv.artworkRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload artwork after update")
	}

	return usecase.NewArtworkOutput(updated), nil
}

// DeleteArtwork removes one of the owner's artworks.
func (srv *artworkService) DeleteArtwork(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.artworkRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return errors.Wrap(domainerrors.ErrArtworkNotFound, "artwork delete failed")
		}

		return errors.Wrap(err, "failed to delete artwork")
	}

	srv.log(ctx).Debug("Artwork deleted", slog.Any("artworkID", id), slog.Any("ownerID", ownerID))

	return nil
}

// GenerateShareCode renders a QR share code for one of the owner's artworks.
func (srv *artworkService) GenerateShareCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	if _, err := srv.artworkRepo.FindByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArtworkNotFound, "artwork lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load artwork")
	}

	pngBytes, err := srv.qrService.GenerateArtworkQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return pngBytes, nil
}
