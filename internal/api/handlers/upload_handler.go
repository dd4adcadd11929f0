package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadRecipeImage(c *fiber.Ctx) error
		UploadStepImage(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
	}
)

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

func (h *uploadHandler) UploadRecipeImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpload, domain.ErrNoFileUploaded)
	}

	imageURL, err := h.uploadService.UploadRecipeImage(c.Context(), file)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpload, err)
	}

	return c.JSON(domain.UploadResponse{ImageURL: imageURL})
}

func (h *uploadHandler) UploadStepImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpload, domain.ErrNoFileUploaded)
	}

	imageURL, err := h.uploadService.UploadStepImage(c.Context(), file)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpload, err)
	}

	return c.JSON(domain.UploadResponse{ImageURL: imageURL})
}
