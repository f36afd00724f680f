package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/internal/api/presenters"
	"github.com/rotnot/rotnot-backend/pkg/detection"
)

type (
	DetectionHandler interface {
		DetectBase64(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	detectionHandler struct {
		detectionService detection.DetectionService
		validator        *validator.Validate
	}
)

func NewDetectionHandler(detectionService detection.DetectionService, validator *validator.Validate) DetectionHandler {
	return &detectionHandler{
		detectionService: detectionService,
		validator:        validator,
	}
}

func (h *detectionHandler) DetectBase64(c *fiber.Ctx) error {
	req := new(domain.DetectRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetect, err)
	}

	verdict, err := h.detectionService.DetectBase64(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDetect, err)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(verdict)
}

func (h *detectionHandler) Health(c *fiber.Ctx) error {
	verdict, err := h.detectionService.Health(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageDetectionUnavailable, err)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(verdict)
}
