package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "kunstcollectie/internal/delivery/context"
	"kunstcollectie/internal/delivery/http/response"
	domainerrors "kunstcollectie/internal/domain/errors"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArtworkHandler holds dependencies for catalogue handlers.
type ArtworkHandler struct {
	uc     usecase.ArtworkUsecase
	logger *slog.Logger
}

// NewArtworkHandler is the constructor for ArtworkHandler, injected by Fx.
func NewArtworkHandler(uc usecase.ArtworkUsecase, logger *slog.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		uc:     uc,
		logger: logger,
	}
}

// ownerID returns the authenticated caller's identity. Handlers in this file
// run behind the Authenticate middleware, so claims are always present.
func ownerID(c echo.Context) (uuid.UUID, error) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return claims.UserID, nil
}

// CreateArtwork catalogues a new artwork owned by the caller.
func (h *ArtworkHandler) CreateArtwork(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateArtworkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid artwork input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateArtwork(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Artwork created successfully")
}

// GetArtwork returns one of the caller's artworks by ID.
func (h *ArtworkHandler) GetArtwork(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork ID")
	}

	output, err := h.uc.GetArtwork(c.Request().Context(), owner, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Artwork retrieved successfully")
}

// ListArtworks returns a page of the caller's artworks.
func (h *ArtworkHandler) ListArtworks(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListArtworksInput{}
	if page := c.QueryParam("page"); page != "" {
		input.Page, _ = strconv.Atoi(page)
	}
	if pageSize := c.QueryParam("pageSize"); pageSize != "" {
		input.PageSize, _ = strconv.Atoi(pageSize)
	}

	output, err := h.uc.ListArtworks(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Artworks retrieved successfully")
}

// UpdateArtwork replaces the state of one of the caller's artworks.
func (h *ArtworkHandler) UpdateArtwork(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork ID")
	}

	var input *usecase.UpdateArtworkInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid artwork input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateArtwork(c.Request().Context(), owner, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Artwork updated successfully")
}

// DeleteArtwork removes one of the caller's artworks.
func (h *ArtworkHandler) DeleteArtwork(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork ID")
	}

	if err := h.uc.DeleteArtwork(c.Request().Context(), owner, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artwork deleted successfully")
}

// GetArtworkQR streams a QR share code for one of the caller's artworks.
func (h *ArtworkHandler) GetArtworkQR(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork ID")
	}

	png, err := h.uc.GenerateShareCode(c.Request().Context(), owner, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
