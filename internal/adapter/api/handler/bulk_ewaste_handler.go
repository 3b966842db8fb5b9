package handler

import (
	"ewastehub/internal/domain/repository"
	"ewastehub/internal/domain/service"
	"ewastehub/internal/usecase"
	"ewastehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type BulkEWasteHandler struct {
	bulkUseCase      *usecase.BulkEWasteUseCase
	fileService      service.FileUploadService
	fileMetadataRepo repository.FileMetadataRepository
}

func NewBulkEWasteHandler(bulkUseCase *usecase.BulkEWasteUseCase, fileService service.FileUploadService, fileMetadataRepo repository.FileMetadataRepository) *BulkEWasteHandler {
	return &BulkEWasteHandler{
		bulkUseCase:      bulkUseCase,
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
	}
}

type createBulkRequest struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	WeightInKg  float64 `validate:"required,min=0.1"`
	Category    string  `validate:"omitempty,oneof=Electronics Appliances Computers 'Mobile Devices' Batteries Mixed Other"`
	Condition   string  `validate:"omitempty,oneof='working' 'not working' 'damaged' 'mixed'"`
}

func (h *BulkEWasteHandler) Create(c echo.Context) error {
	weight, err := formFloatValue(c, "weightInKg")
	if err != nil {
		return response.Error(c, err)
	}

	req := createBulkRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
	}
	if weight != nil {
		req.WeightInKg = *weight
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pricePerKg, err := formFloatValue(c, "pricePerKg")
	if err != nil {
		return response.Error(c, err)
	}

	uploads, err := uploadListingImages(c, h.fileService, "bulk-ewaste")
	if err != nil {
		return response.Error(c, err)
	}

	actor := actorFromContext(c)

	listing, err := h.bulkUseCase.Create(c.Request().Context(), actor, usecase.CreateBulkInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		WeightInKg:  req.WeightInKg,
		PricePerKg:  pricePerKg,
		Location:    c.FormValue("location"),
	}, imageURLs(uploads))
	if err != nil {
		return response.Error(c, err)
	}

	recordImageMetadata(c.Request().Context(), h.fileMetadataRepo, uploads, "bulk-ewaste", listing.ID, actor.ID)

	return response.Created(c, listing)
}

func (h *BulkEWasteHandler) ListMine(c echo.Context) error {
	listings, err := h.bulkUseCase.ListMine(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *BulkEWasteHandler) ListAll(c echo.Context) error {
	filter := usecase.BulkFilter{
		Status:    c.QueryParam("status"),
		Condition: c.QueryParam("condition"),
	}

	listings, err := h.bulkUseCase.ListAll(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, listings, len(listings))
}

func (h *BulkEWasteHandler) GetByID(c echo.Context) error {
	listing, err := h.bulkUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *BulkEWasteHandler) Update(c echo.Context) error {
	id := c.Param("id")

	weight, err := formFloatValue(c, "weightInKg")
	if err != nil {
		return response.Error(c, err)
	}

	pricePerKg, err := formFloat(c, "pricePerKg")
	if err != nil {
		return response.Error(c, err)
	}

	location, err := formString(c, "location")
	if err != nil {
		return response.Error(c, err)
	}

	uploads, err := uploadListingImages(c, h.fileService, "bulk-ewaste")
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateBulkInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		PricePerKg:  pricePerKg,
		Location:    location,
	}
	if weight != nil {
		input.WeightInKg = *weight
	}

	actor := actorFromContext(c)

	listing, err := h.bulkUseCase.Update(c.Request().Context(), actor, id, input, imageURLs(uploads))
	if err != nil {
		return response.Error(c, err)
	}

	recordImageMetadata(c.Request().Context(), h.fileMetadataRepo, uploads, "bulk-ewaste", listing.ID, actor.ID)

	return response.Success(c, listing)
}

func (h *BulkEWasteHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	err := h.bulkUseCase.Delete(c.Request().Context(), actorFromContext(c), id)
	if err != nil {
		return response.Error(c, err)
	}

	deleteListingImages(c.Request().Context(), h.fileMetadataRepo, h.fileService, "bulk-ewaste", id)

	return response.Message(c, "Bulk e-waste post deleted successfully")
}

func (h *BulkEWasteHandler) MarkSold(c echo.Context) error {
	listing, err := h.bulkUseCase.MarkSold(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
