package handlers

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/pkg/entry"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EntryHandler interface {
		GetEntries(c *fiber.Ctx) error
		GetEntryByID(c *fiber.Ctx) error
		CreateEntry(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	entryHandler struct {
		entryService entry.EntryService
		validator    *validator.Validate
	}
)

func NewEntryHandler(entryService entry.EntryService, validator *validator.Validate) EntryHandler {
	return &entryHandler{
		entryService: entryService,
		validator:    validator,
	}
}

func (h *entryHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.entryService.GetEntries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, entryErrorStatus(err), domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *entryHandler) GetEntryByID(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEntry, err)
	}

	res, err := h.entryService.GetEntryByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, entryErrorStatus(err), domain.MessageFailedGetEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntry)
}

func (h *entryHandler) CreateEntry(c *fiber.Ctx) error {
	req, err := h.parseEntryRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEntry, err)
	}

	res, err := h.entryService.CreateEntry(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, entryErrorStatus(err), domain.MessageFailedCreateEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateEntry)
}

func (h *entryHandler) UpdateEntry(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateEntry, err)
	}

	req, err := h.parseEntryRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEntry, err)
	}

	if err := h.entryService.UpdateEntry(c.Context(), id, req); err != nil {
		return presenters.ErrorResponse(c, entryErrorStatus(err), domain.MessageFailedUpdateEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateEntry)
}

func (h *entryHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := entryID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
	}

	if err := h.entryService.DeleteEntry(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, entryErrorStatus(err), domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *entryHandler) parseEntryRequest(c *fiber.Ctx) (domain.EntryRequest, error) {
	req := new(domain.EntryRequest)
	if err := c.BodyParser(req); err != nil {
		return domain.EntryRequest{}, domain.ErrInvalidBody
	}

	if err := h.validator.Struct(req); err != nil {
		return domain.EntryRequest{}, domain.ErrEntryFieldsRequired
	}
	return *req, nil
}

// entryID parses the :id route param. Anything that is not an integer
// cannot name an entry.
func entryID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrEntryNotFound
	}
	return id, nil
}

func entryErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEntryFieldsRequired), errors.Is(err, domain.ErrInvalidBody):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
