package handler

import (
	"ewastehub/internal/domain/repository"
	"ewastehub/internal/domain/service"
	"ewastehub/internal/usecase"
	"ewastehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type EWasteHandler struct {
	ewasteUseCase    *usecase.EWasteUseCase
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
}

func NewEWasteHandler(ewasteUseCase *usecase.EWasteUseCase, fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository) *EWasteHandler {
	return &EWasteHandler{
		ewasteUseCase:    ewasteUseCase,
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
	}
}

type createEWasteRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required,oneof=Electronics Appliances Computers 'Mobile Devices' Batteries Other"`
	Condition   string `validate:"required,oneof='working' 'not working' 'damaged'"`
	Quantity    int    `validate:"omitempty,min=1"`
}

func (h *EWasteHandler) Create(c echo.Context) error {
	quantity, err := formInt(c, "quantity")
	if err != nil {
		return response.Error(c, err)
	}

	req := createEWasteRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		Quantity:    quantity,
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	price, err := formFloatValue(c, "price")
	if err != nil {
		return response.Error(c, err)
	}

	uploads, err := uploadListingImages(c, h.fileService, "ewaste")
	if err != nil {
		return response.Error(c, err)
	}

	actor := actorFromContext(c)

	listing, err := h.ewasteUseCase.Create(c.Request().Context(), actor, usecase.CreateEWasteInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		Quantity:    req.Quantity,
		Price:       price,
		Location:    c.FormValue("location"),
	}, imageURLs(uploads))
	if err != nil {
		return response.Error(c, err)
	}

	recordImageMetadata(c.Request().Context(), h.fileMetadataRepo, uploads, "ewaste", listing.ID, actor.ID)

	return response.Created(c, listing)
}

func (h *EWasteHandler) ListMine(c echo.Context) error {
	listings, err := h.ewasteUseCase.ListMine(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *EWasteHandler) ListAll(c echo.Context) error {
	filter := usecase.EWasteFilter{
		Status:    c.QueryParam("status"),
		Condition: c.QueryParam("condition"),
	}

	listings, err := h.ewasteUseCase.ListAll(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *EWasteHandler) GetByID(c echo.Context) error {
	listing, err := h.ewasteUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *EWasteHandler) Update(c echo.Context) error {
	id := c.Param("id")

	quantity, err := formInt(c, "quantity")
	if err != nil {
		return response.Error(c, err)
	}

	price, err := formFloat(c, "price")
	if err != nil {
		return response.Error(c, err)
	}

	location, err := formString(c, "location")
	if err != nil {
		return response.Error(c, err)
	}

	uploads, err := uploadListingImages(c, h.fileService, "ewaste")
	if err != nil {
		return response.Error(c, err)
	}

	actor := actorFromContext(c)

	listing, err := h.ewasteUseCase.Update(c.Request().Context(), actor, id, usecase.UpdateEWasteInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		Quantity:    quantity,
		Price:       price,
		Location:    location,
	}, imageURLs(uploads))
	if err != nil {
		return response.Error(c, err)
	}

	recordImageMetadata(c.Request().Context(), h.fileMetadataRepo, uploads, "ewaste", listing.ID, actor.ID)

	return response.Success(c, listing)
}

func (h *EWasteHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	err := h.ewasteUseCase.Delete(c.Request().Context(), actorFromContext(c), id)
	if err != nil {
		return response.Error(c, err)
	}

	deleteListingImages(c.Request().Context(), h.fileMetadataRepo, h.fileService, "ewaste", id)

	return response.Message(c, "E-waste post deleted successfully")
}

func (h *EWasteHandler) MarkCollected(c echo.Context) error {
	listing, err := h.ewasteUseCase.MarkCollected(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
