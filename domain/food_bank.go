package domain

import "fmt"

var (
	MessageSuccessGetFoodBanks   = "food banks retrieved successfully"
	MessageSuccessCreateFoodBank = "food bank created successfully"

	MessageFailedGetFoodBanks   = "failed to retrieve food banks"
	MessageFailedCreateFoodBank = "failed to create food bank"

	ErrFoodBankNotFound    = fmt.Errorf("%w: food bank not found", ErrNotFound)
	ErrInvalidCoordinates  = fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	ErrInvalidFoodBankType = fmt.Errorf("%w: type must be one of community, charity, shelter", ErrValidation)
)

type (
	// Latitude and longitude deliberately skip "required": zero is a valid
	// coordinate and the handler already rejects missing params.
	NearbyFoodBanksRequest struct {
		Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
		Longitude float64 `json:"lng" validate:"min=-180,max=180"`
		// MaxDistance is in meters.
		MaxDistance float64 `json:"max_distance" validate:"omitempty,min=1"`
	}

	CreateFoodBankRequest struct {
		Name      string   `json:"name" validate:"required"`
		Type      string   `json:"type" validate:"required,oneof=community charity shelter"`
		Address   string   `json:"address" validate:"required"`
		Latitude  *float64 `json:"lat" validate:"required"`
		Longitude *float64 `json:"lng" validate:"required"`
		Phone     string   `json:"phone" validate:"omitempty"`
		OpenUntil string   `json:"open_until" validate:"omitempty"`
	}

	FoodBank struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Type      string  `json:"type"`
		Address   string  `json:"address"`
		Latitude  float64 `json:"lat"`
		Longitude float64 `json:"lng"`
		Phone     string  `json:"phone,omitempty"`
		OpenUntil string  `json:"open_until,omitempty"`
		Distance  string  `json:"distance,omitempty"`
	}
)
