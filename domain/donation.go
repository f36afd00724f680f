package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessCreateDonation      = "donation created successfully"
	MessageSuccessGetDonations        = "donations retrieved successfully"
	MessageSuccessUpdateDonation      = "donation status updated successfully"
	MessageSuccessAcceptDonation      = "donation accepted successfully"
	MessageSuccessDeclineDonation     = "donation declined successfully"
	MessageSuccessCancelDonation      = "donation cancelled successfully"
	MessageSuccessDismissDonation     = "donation dismissed successfully"
	MessageSuccessGetPendingDonations = "pending donations retrieved successfully"
	MessageSuccessGetLeaderboard      = "leaderboard retrieved successfully"

	MessageFailedCreateDonation  = "failed to create donation"
	MessageFailedGetDonations    = "failed to retrieve donations"
	MessageFailedUpdateDonation  = "failed to update donation"
	MessageFailedAcceptDonation  = "failed to accept donation"
	MessageFailedDeclineDonation = "failed to decline donation"
	MessageFailedCancelDonation  = "failed to cancel donation"
	MessageFailedDismissDonation = "failed to dismiss donation"
	MessageFailedGetLeaderboard  = "failed to retrieve leaderboard"

	ErrDonationNotFound       = fmt.Errorf("%w: donation not found", ErrNotFound)
	ErrDonationAccessDenied   = fmt.Errorf("%w: donation belongs to another user", ErrForbidden)
	ErrNoFoodBankAffiliation  = fmt.Errorf("%w: user is not associated with a food bank", ErrForbidden)
	ErrWrongFoodBank          = fmt.Errorf("%w: donation targets a different food bank", ErrForbidden)
	ErrEmptyDonation          = fmt.Errorf("%w: food bank id and food items are required", ErrValidation)
	ErrItemsNotOwned          = fmt.Errorf("%w: some food items not found or do not belong to you", ErrValidation)
	ErrInvalidDonationStatus  = fmt.Errorf("%w: invalid donation status", ErrValidation)
	ErrDonationNotPending     = fmt.Errorf("%w: only pending donations can be accepted or declined", ErrConflict)
	ErrDonationNotCancellable = fmt.Errorf("%w: cannot cancel a completed or picked up donation", ErrConflict)
	ErrInvalidTransition      = fmt.Errorf("%w: status transition not allowed", ErrConflict)
)

type (
	DonationItemRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	}

	CreateDonationRequest struct {
		FoodBankID string                `json:"food_bank_id" validate:"required,uuid"`
		FoodItems  []DonationItemRequest `json:"food_items" validate:"required,min=1,dive"`
		Notes      string                `json:"notes" validate:"omitempty"`
	}

	UpdateDonationStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	DonationItemSnapshot struct {
		FoodItemID string  `json:"food_item_id"`
		Name       string  `json:"name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
	}

	Donation struct {
		ID                string                 `json:"id"`
		DonorID           string                 `json:"donor_id"`
		FoodBankID        string                 `json:"food_bank_id"`
		FoodBank          *FoodBank              `json:"food_bank,omitempty"`
		Items             []DonationItemSnapshot `json:"items"`
		Status            string                 `json:"status"`
		PickupScheduledAt *time.Time             `json:"pickup_scheduled_at,omitempty"`
		PickupCompletedAt *time.Time             `json:"pickup_completed_at,omitempty"`
		Notes             string                 `json:"notes,omitempty"`
		CreatedAt         time.Time              `json:"created_at"`
		UpdatedAt         time.Time              `json:"updated_at"`
	}

	LeaderboardEntry struct {
		Rank           int     `json:"rank"`
		DonorID        string  `json:"donor_id"`
		Name           string  `json:"name"`
		Role           string  `json:"role"`
		TotalDonations int     `json:"total_donations"`
		TotalItems     float64 `json:"total_items"`
	}
)
