package handler

import (
	"log/slog"
	"net/http"

	"kunstcollectie/internal/delivery/http/response"
	"kunstcollectie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArtworkTypeHandler holds dependencies for artwork type handlers.
type ArtworkTypeHandler struct {
	uc     usecase.ArtworkTypeUsecase
	logger *slog.Logger
}

// NewArtworkTypeHandler is the constructor for ArtworkTypeHandler, injected by Fx.
func NewArtworkTypeHandler(uc usecase.ArtworkTypeUsecase, logger *slog.Logger) *ArtworkTypeHandler {
	return &ArtworkTypeHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateArtworkType adds a category to the caller's catalogue.
func (h *ArtworkTypeHandler) CreateArtworkType(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateArtworkTypeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid artwork type input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateArtworkType(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Artwork type created successfully")
}

// ListArtworkTypes returns all of the caller's categories.
func (h *ArtworkTypeHandler) ListArtworkTypes(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListArtworkTypes(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Artwork types retrieved successfully")
}

// UpdateArtworkType renames or redescribes one of the caller's categories.
func (h *ArtworkTypeHandler) UpdateArtworkType(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork type ID")
	}

	var input *usecase.UpdateArtworkTypeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid artwork type input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateArtworkType(c.Request().Context(), owner, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Artwork type updated successfully")
}

// DeleteArtworkType removes a category; artworks referencing it are detached,
// not deleted.
func (h *ArtworkTypeHandler) DeleteArtworkType(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artwork type ID")
	}

	if err := h.uc.DeleteArtworkType(c.Request().Context(), owner, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artwork type deleted successfully")
}
