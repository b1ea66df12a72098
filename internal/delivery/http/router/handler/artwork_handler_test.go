package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kunstcollectie/internal/domain/entity"
	domainerrors "kunstcollectie/internal/domain/errors"
	mockUC "kunstcollectie/internal/mocks/usecase"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArtworkHandler_CreateArtwork_Created(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.POST("/api/artworks", h.CreateArtwork, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}
	artworkID := uuid.New()

	uc.EXPECT().
		CreateArtwork(mock.Anything, owner.ID, mock.AnythingOfType("*usecase.CreateArtworkInput")).
		Return(&usecase.ArtworkOutput{ID: artworkID, Title: "Nachtwacht"}, nil)

	body := `{"title":"Nachtwacht","artist":"Rembrandt van Rijn","year":1642}`
	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), artworkID.String())
}

func TestArtworkHandler_CreateArtwork_RequiresAuth(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.POST("/api/artworks", h.CreateArtwork, authMw.Authenticate)

	body := `{"title":"Nachtwacht"}`
	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestArtworkHandler_CreateArtwork_MissingTitle(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.POST("/api/artworks", h.CreateArtwork, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}

	body := `{"artist":"Rembrandt van Rijn"}`
	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestArtworkHandler_GetArtwork_NotFound(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.GET("/api/artworks/:id", h.GetArtwork, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}
	artworkID := uuid.New()

	uc.EXPECT().
		GetArtwork(mock.Anything, owner.ID, artworkID).
		Return(nil, errors.Wrap(domainerrors.ErrArtworkNotFound, "artwork lookup failed"))

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/"+artworkID.String(), nil)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ARTWORK_NOT_FOUND")
}

func TestArtworkHandler_ListArtworks_PagingParams(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.GET("/api/artworks", h.ListArtworks, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}

	uc.EXPECT().
		ListArtworks(mock.Anything, owner.ID, mock.AnythingOfType("*usecase.ListArtworksInput")).
		RunAndReturn(func(ctx context.Context, ownerID uuid.UUID, input *usecase.ListArtworksInput) (*usecase.ArtworkListOutput, error) {
			assert.Equal(t, 3, input.Page)
			assert.Equal(t, 5, input.PageSize)

			return &usecase.ArtworkListOutput{
				Artworks: []*usecase.ArtworkOutput{},
				Total:    0,
				Page:     3,
				PageSize: 5,
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/artworks?page=3&pageSize=5", nil)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestArtworkHandler_GetArtworkQR_ServesPNG(t *testing.T) {
	uc := mockUC.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.GET("/api/artworks/:id/qr", h.GetArtworkQR, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}
	artworkID := uuid.New()
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	uc.EXPECT().
		GenerateShareCode(mock.Anything, owner.ID, artworkID).
		Return(pngBytes, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/"+artworkID.String()+"/qr", nil)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestArtworkTypeHandler_DeleteArtworkType_NotFound(t *testing.T) {
	uc := mockUC.NewMockArtworkTypeUsecase(t)
	h := NewArtworkTypeHandler(uc, discardLogger())

	authMw := newTestTokenService(t)
	e := newTestEcho(t)
	e.DELETE("/api/artwork-types/:id", h.DeleteArtworkType, authMw.Authenticate)

	owner := &entity.User{ID: uuid.New(), Email: "jan@example.com", Role: entity.RoleUser}
	typeID := uuid.New()

	uc.EXPECT().
		DeleteArtworkType(mock.Anything, owner.ID, typeID).
		Return(errors.Wrap(domainerrors.ErrArtworkTypeNotFound, "artwork type delete failed"))

	req := httptest.NewRequest(http.MethodDelete, "/api/artwork-types/"+typeID.String(), nil)
	req.Header.Set("Authorization", authHeaderFor(t, owner))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ARTWORK_TYPE_NOT_FOUND")
}
