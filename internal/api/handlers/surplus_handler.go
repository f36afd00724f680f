package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/internal/api/presenters"
	"github.com/rotnot/rotnot-backend/pkg/surplus"
)

type (
	SurplusHandler interface {
		PostSurplus(c *fiber.Ctx) error
		GetAvailableSurplus(c *fiber.Ctx) error
		ClaimSurplus(c *fiber.Ctx) error
		CompleteSurplus(c *fiber.Ctx) error
	}

	surplusHandler struct {
		surplusService surplus.SurplusService
		validator      *validator.Validate
	}
)

func NewSurplusHandler(surplusService surplus.SurplusService, validator *validator.Validate) SurplusHandler {
	return &surplusHandler{
		surplusService: surplusService,
		validator:      validator,
	}
}

func (h *surplusHandler) PostSurplus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PostSurplusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPostSurplus, err)
	}

	res, err := h.surplusService.PostSurplus(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedPostSurplus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPostSurplus)
}

func (h *surplusHandler) GetAvailableSurplus(c *fiber.Ctx) error {
	posts, err := h.surplusService.GetAvailableSurplus(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetSurplus, err)
	}

	return presenters.SuccessResponse(c, posts, fiber.StatusOK, domain.MessageSuccessGetSurplus)
}

func (h *surplusHandler) ClaimSurplus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	res, err := h.surplusService.ClaimSurplus(c.Context(), postID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedClaimSurplus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaimSurplus)
}

func (h *surplusHandler) CompleteSurplus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	if err := h.surplusService.CompleteSurplus(c.Context(), postID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCompleteSurplus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteSurplus)
}
