package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rotnot/rotnot-backend/domain"
	"github.com/rotnot/rotnot-backend/internal/api/presenters"
	"github.com/rotnot/rotnot-backend/pkg/foodbank"
)

type (
	FoodBankHandler interface {
		GetNearbyFoodBanks(c *fiber.Ctx) error
		GetAllFoodBanks(c *fiber.Ctx) error
		CreateFoodBank(c *fiber.Ctx) error
	}

	foodBankHandler struct {
		foodBankService foodbank.FoodBankService
		validator       *validator.Validate
	}
)

func NewFoodBankHandler(foodBankService foodbank.FoodBankService, validator *validator.Validate) FoodBankHandler {
	return &foodBankHandler{
		foodBankService: foodBankService,
		validator:       validator,
	}
}

func (h *foodBankHandler) GetNearbyFoodBanks(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodBanks, domain.ErrInvalidCoordinates)
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodBanks, domain.ErrInvalidCoordinates)
	}

	req := domain.NearbyFoodBanksRequest{Latitude: lat, Longitude: lng}
	if raw := c.Query("max_distance"); raw != "" {
		if maxDistance, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MaxDistance = maxDistance
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodBanks, err)
	}

	foodBanks, err := h.foodBankService.GetNearbyFoodBanks(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodBanks, err)
	}

	return presenters.SuccessResponse(c, foodBanks, fiber.StatusOK, domain.MessageSuccessGetFoodBanks)
}

func (h *foodBankHandler) GetAllFoodBanks(c *fiber.Ctx) error {
	foodBanks, err := h.foodBankService.GetAllFoodBanks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodBanks, err)
	}

	return presenters.SuccessResponse(c, foodBanks, fiber.StatusOK, domain.MessageSuccessGetFoodBanks)
}

func (h *foodBankHandler) CreateFoodBank(c *fiber.Ctx) error {
	req := new(domain.CreateFoodBankRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodBank, err)
	}

	res, err := h.foodBankService.CreateFoodBank(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateFoodBank, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodBank)
}
