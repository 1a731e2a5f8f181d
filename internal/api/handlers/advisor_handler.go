package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/presenters"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/advisor"
)

type (
	AdvisorHandler interface {
		Chat(c *fiber.Ctx) error
	}

	advisorHandler struct {
		advisorService advisor.AdvisorService
		validator      *validator.Validate
	}
)

func NewAdvisorHandler(advisorService advisor.AdvisorService, validator *validator.Validate) AdvisorHandler {
	return &advisorHandler{
		advisorService: advisorService,
		validator:      validator,
	}
}

func (h *advisorHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.AdvisorChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvisorChat, err)
	}

	reply, err := h.advisorService.Chat(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrAdvisorUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAdvisorChat, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvisorChat, err)
	}

	return presenters.SuccessResponse(c, reply, fiber.StatusOK, domain.MessageSuccessAdvisorChat)
}
