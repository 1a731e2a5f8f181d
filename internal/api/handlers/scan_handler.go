package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/presenters"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/scan"
)

type (
	ScanHandler interface {
		SubmitScan(c *fiber.Ctx) error
		GetScanHistory(c *fiber.Ctx) error
		GetScanDetail(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) SubmitScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitScan, err)
	}

	res, err := h.scanService.SubmitScan(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadFailed) || errors.Is(err, domain.ErrPersistScan) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSubmitScan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitScan)
}

func (h *scanHandler) GetScanHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	scans, err := h.scanService.GetScanHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanHistory, err)
	}

	return presenters.SuccessResponse(c, scans, fiber.StatusOK, domain.MessageSuccessGetScanHistory)
}

func (h *scanHandler) GetScanDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.scanService.GetScanDetail(c.Context(), scanID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetScanDetail, err)
		}
		if errors.Is(err, domain.ErrUnauthorizedAccess) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetScanDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScanDetail)
}
