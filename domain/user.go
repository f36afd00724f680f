package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrInvalidUserRole = fmt.Errorf("%w: role must be one of user, hostel, restaurant, ngo", ErrValidation)
)

type (
	UpsertProfileRequest struct {
		Name       string  `json:"name" validate:"omitempty"`
		Role       string  `json:"role" validate:"omitempty,oneof=user hostel restaurant ngo"`
		Phone      string  `json:"phone" validate:"omitempty"`
		FoodBankID *string `json:"food_bank_id" validate:"omitempty,uuid"`
	}

	UserProfile struct {
		ID         string    `json:"id"`
		Role       string    `json:"role"`
		Name       string    `json:"name"`
		Email      string    `json:"email,omitempty"`
		Phone      string    `json:"phone,omitempty"`
		FoodBankID string    `json:"food_bank_id,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
