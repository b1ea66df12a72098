package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/domain/repository"
	mockRepo "kunstcollectie/internal/mocks/repository"
	mockSvc "kunstcollectie/internal/mocks/service"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// artworkServiceFixtures holds all test dependencies for artwork service tests.
type artworkServiceFixtures struct {
	service     usecase.ArtworkUsecase
	artworkRepo *mockRepo.MockArtworkRepository
	typeRepo    *mockRepo.MockArtworkTypeRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestArtworkService(t *testing.T) artworkServiceFixtures {
	artworkRepo := mockRepo.NewMockArtworkRepository(t)
	typeRepo := mockRepo.NewMockArtworkTypeRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewArtworkService(ArtworkServiceParams{
		ArtworkRepo: artworkRepo,
		TypeRepo:    typeRepo,
		QRService:   qrService,
		Logger:      logger,
	})

	return artworkServiceFixtures{
		service:     service,
		artworkRepo: artworkRepo,
		typeRepo:    typeRepo,
		qrService:   qrService,
	}
}

func TestArtworkService_CreateArtwork_Success(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateArtworkInput{
		Title:         "Meisje met de parel",
		Artist:        "Johannes Vermeer",
		Year:          1665,
		Location:      "Mauritshuis",
		PurchasePrice: 1200,
	}

	fx.artworkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Artwork")).
		Run(func(ctx context.Context, artwork *entity.Artwork) {
			assert.Equal(t, ownerID, artwork.OwnerID)
			artwork.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateArtwork(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Title, output.Title)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestArtworkService_CreateArtwork_UnknownType(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	typeID := uuid.New()

	fx.typeRepo.EXPECT().
		FindByID(ctx, ownerID, typeID).
		Return(nil, repository.ErrArtworkTypeNotFound)

	output, err := fx.service.CreateArtwork(ctx, ownerID, &usecase.CreateArtworkInput{
		Title:  "Zonder titel",
		TypeID: &typeID,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrArtworkTypeNotFound))
}

// A type reference is only valid when the type belongs to the same owner; the
// repository applies owner scoping, so another owner's type reads as missing.
func TestArtworkService_CreateArtwork_ForeignTypeReference(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	foreignTypeID := uuid.New()

	fx.typeRepo.EXPECT().
		FindByID(ctx, ownerID, foreignTypeID).
		Return(nil, repository.ErrArtworkTypeNotFound)

	output, err := fx.service.CreateArtwork(ctx, ownerID, &usecase.CreateArtworkInput{
		Title:  "Zonder titel",
		TypeID: &foreignTypeID,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrArtworkTypeNotFound))
}

func TestArtworkService_GetArtwork_NotFound(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()

	fx.artworkRepo.EXPECT().
		FindByID(ctx, ownerID, artworkID).
		Return(nil, repository.ErrArtworkNotFound)

	output, err := fx.service.GetArtwork(ctx, ownerID, artworkID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrArtworkNotFound))
}

func TestArtworkService_ListArtworks_DefaultsAndClamping(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.artworkRepo.EXPECT().
		ListByOwner(ctx, ownerID, 0, 20).
		Return([]*entity.Artwork{}, 0, nil)

	output, err := fx.service.ListArtworks(ctx, ownerID, &usecase.ListArtworksInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PageSize)

	fx.artworkRepo.EXPECT().
		ListByOwner(ctx, ownerID, 100, 100).
		Return([]*entity.Artwork{}, 0, nil)

	output, err = fx.service.ListArtworks(ctx, ownerID, &usecase.ListArtworksInput{
		Page:     2,
		PageSize: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, output.PageSize)
}

func TestArtworkService_ListArtworks_ReturnsPage(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworks := []*entity.Artwork{
		{ID: uuid.New(), OwnerID: ownerID, Title: "Nachtwacht"},
		{ID: uuid.New(), OwnerID: ownerID, Title: "De Sterrennacht"},
	}

	fx.artworkRepo.EXPECT().
		ListByOwner(ctx, ownerID, 0, 20).
		Return(artworks, 12, nil)

	output, err := fx.service.ListArtworks(ctx, ownerID, &usecase.ListArtworksInput{})

	require.NoError(t, err)
	assert.Len(t, output.Artworks, 2)
	assert.Equal(t, int64(12), output.Total)
}

func TestArtworkService_UpdateArtwork_NotFound(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()

	fx.artworkRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Artwork")).
		Return(repository.ErrArtworkNotFound)

	output, err := fx.service.UpdateArtwork(ctx, ownerID, artworkID, &usecase.UpdateArtworkInput{
		Title: "Nieuwe titel",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrArtworkNotFound))
}

func TestArtworkService_DeleteArtwork_NotFound(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()

	fx.artworkRepo.EXPECT().
		Delete(ctx, ownerID, artworkID).
		Return(repository.ErrArtworkNotFound)

	err := fx.service.DeleteArtwork(ctx, ownerID, artworkID)

	assert.True(t, errors.Is(err, domainerrors.ErrArtworkNotFound))
}

func TestArtworkService_GenerateShareCode_Success(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artwork := &entity.Artwork{ID: uuid.New(), OwnerID: ownerID, Title: "Nachtwacht"}

	fx.artworkRepo.EXPECT().FindByID(ctx, ownerID, artwork.ID).Return(artwork, nil)
	fx.qrService.EXPECT().GenerateArtworkQR(artwork.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.GenerateShareCode(ctx, ownerID, artwork.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestArtworkService_GenerateShareCode_OwnershipChecked(t *testing.T) {
	fx := createTestArtworkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	artworkID := uuid.New()

	fx.artworkRepo.EXPECT().
		FindByID(ctx, ownerID, artworkID).
		Return(nil, repository.ErrArtworkNotFound)

	png, err := fx.service.GenerateShareCode(ctx, ownerID, artworkID)

	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrArtworkNotFound))
}
