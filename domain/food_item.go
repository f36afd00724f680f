package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item created successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessGetExpiringFood = "expiring food items retrieved successfully"

	MessageFailedAddFoodItem     = "failed to create food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedGetExpiringFood = "failed to retrieve expiring food items"

	ErrFoodItemNotFound     = fmt.Errorf("%w: food item not found", ErrNotFound)
	ErrFoodItemAccessDenied = fmt.Errorf("%w: food item belongs to another user", ErrForbidden)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be a non-negative number", ErrValidation)
	ErrInvalidExpiryDate    = fmt.Errorf("%w: invalid expiry date", ErrValidation)
)

type (
	AddFoodItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Category   string   `json:"category" validate:"required"`
		Quantity   *float64 `json:"quantity" validate:"required"`
		Unit       string   `json:"unit" validate:"required"`
		ExpiryDate string   `json:"expiry_date" validate:"required"`
	}

	UpdateFoodItemRequest struct {
		Name       *string  `json:"name"`
		Category   *string  `json:"category"`
		Quantity   *float64 `json:"quantity"`
		Unit       *string  `json:"unit"`
		ExpiryDate *string  `json:"expiry_date"`
	}

	FoodItemResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Category   string    `json:"category"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		AddedAt    time.Time `json:"added_at"`
		ExpiryDate time.Time `json:"expiry_date"`
		Status     string    `json:"status"`
		OwnerID    string    `json:"owner_id"`
	}

	ExpiringFoodItemResponse struct {
		FoodItemResponse
		DaysUntilExpiry int `json:"days_until_expiry"`
	}
)
