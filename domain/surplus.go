package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessPostSurplus     = "surplus posted successfully"
	MessageSuccessClaimSurplus    = "surplus claimed successfully"
	MessageSuccessCompleteSurplus = "surplus marked as completed"
	MessageSuccessGetSurplus      = "surplus posts retrieved successfully"

	MessageFailedPostSurplus     = "failed to post surplus"
	MessageFailedClaimSurplus    = "failed to claim surplus"
	MessageFailedCompleteSurplus = "failed to complete surplus"
	MessageFailedGetSurplus      = "failed to retrieve surplus posts"

	ErrSurplusNotFound     = fmt.Errorf("%w: surplus post not found", ErrNotFound)
	ErrSurplusNotAvailable = fmt.Errorf("%w: surplus post is no longer available", ErrConflict)
	ErrSurplusNotClaimed   = fmt.Errorf("%w: surplus post has not been claimed", ErrConflict)
	ErrSurplusExpired      = fmt.Errorf("%w: surplus post has expired", ErrConflict)
	ErrSurplusNotClaimant  = fmt.Errorf("%w: only the claimant can complete this surplus", ErrForbidden)
	ErrSurplusOwnClaim     = fmt.Errorf("%w: cannot claim your own surplus post", ErrForbidden)
	ErrNotNGO              = fmt.Errorf("%w: only ngo accounts can claim surplus", ErrForbidden)
)

type (
	PostSurplusRequest struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"omitempty"`
		Quantity    *float64 `json:"quantity" validate:"required,gt=0"`
		Unit        string   `json:"unit" validate:"required"`
		ExpiresAt   string   `json:"expires_at" validate:"required"`
	}

	SurplusPost struct {
		ID          string     `json:"id"`
		DonorID     string     `json:"donor_id"`
		Title       string     `json:"title"`
		Description string     `json:"description,omitempty"`
		Quantity    float64    `json:"quantity"`
		Unit        string     `json:"unit"`
		ExpiresAt   time.Time  `json:"expires_at"`
		Status      string     `json:"status"`
		ClaimedBy   string     `json:"claimed_by,omitempty"`
		ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
