package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/presenters"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/disease"
)

type (
	DiseaseHandler interface {
		SearchSolutions(c *fiber.Ctx) error
	}

	diseaseHandler struct {
		diseaseService disease.DiseaseService
	}
)

func NewDiseaseHandler(diseaseService disease.DiseaseService) DiseaseHandler {
	return &diseaseHandler{diseaseService: diseaseService}
}

func (h *diseaseHandler) SearchSolutions(c *fiber.Ctx) error {
	query := c.Query("q")

	solutions, err := h.diseaseService.SearchSolutions(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchSolutions, err)
	}

	return presenters.SuccessResponse(c, solutions, fiber.StatusOK, domain.MessageSuccessSearchSolutions)
}
