package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodStatus string

const (
	FoodStatusFresh    FoodStatus = "fresh"
	FoodStatusExpiring FoodStatus = "expiring"
	FoodStatusExpired  FoodStatus = "expired"
	FoodStatusDonated  FoodStatus = "donated"
	FoodStatusConsumed FoodStatus = "consumed"
)

type FoodItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID    string     `gorm:"index" json:"owner_id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	AddedAt    time.Time  `json:"added_at"`
	ExpiryDate time.Time  `gorm:"index" json:"expiry_date"`
	Status     FoodStatus `gorm:"index" json:"status"`

	Timestamp
}

// DonatedFood is a full copy of a FoodItem taken at donation time. Rows live
// in their own table so the active registry only contains undonated items,
// and a declined or cancelled donation can restore inventory verbatim.
type DonatedFood struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	AddedAt         time.Time `json:"added_at"`
	ExpiryDate      time.Time `json:"expiry_date"`
	DonatedAt       time.Time `json:"donated_at"`
	OriginalOwnerID string    `gorm:"index" json:"original_owner_id"`
	DonationID      uuid.UUID `gorm:"index" json:"donation_id"`
	FoodBankID      uuid.UUID `gorm:"index" json:"food_bank_id"`

	Timestamp
}
