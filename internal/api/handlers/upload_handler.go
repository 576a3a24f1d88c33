package handlers

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
	}
)

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

func (h *uploadHandler) UploadImage(c *fiber.Ctx) error {
	// Any failure to find the form part (wrong content type, missing field)
	// means the client sent no file.
	file, err := c.FormFile(domain.UploadFormField)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrNoFileUploaded)
	}

	res, err := h.uploadService.UploadImage(c.Context(), domain.UploadImageRequest{Image: file})
	if err != nil {
		status := fiber.StatusInternalServerError
		if domain.IsUploadRejected(err) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
