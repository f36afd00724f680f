package entities

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusAccepted  DonationStatus = "accepted"
	DonationStatusDeclined  DonationStatus = "declined"
	DonationStatusPickedUp  DonationStatus = "picked_up"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

type Donation struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID           string         `gorm:"index" json:"donor_id"`
	FoodBankID        uuid.UUID      `json:"food_bank_id"`
	Status            DonationStatus `gorm:"index" json:"status"`
	PickupScheduledAt *time.Time     `json:"pickup_scheduled_at,omitempty"`
	PickupCompletedAt *time.Time     `json:"pickup_completed_at,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	DismissedByDonor  bool           `json:"dismissed_by_donor"`

	FoodBank *FoodBank       `gorm:"foreignKey:FoodBankID" json:"food_bank,omitempty"`
	Items    []*DonationItem `gorm:"foreignKey:DonationID" json:"items"`
	Timestamp
}

// DonationItem is the immutable snapshot of a food item embedded in a
// donation. It never points back at a live FoodItem row; the source item is
// gone from the active registry the moment the donation exists.
type DonationItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `gorm:"index" json:"donation_id"`
	FoodItemID uuid.UUID `json:"food_item_id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`

	Timestamp
}
