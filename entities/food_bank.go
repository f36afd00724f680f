package entities

import (
	"github.com/google/uuid"
)

type FoodBankType string

const (
	FoodBankTypeCommunity FoodBankType = "community"
	FoodBankTypeCharity   FoodBankType = "charity"
	FoodBankTypeShelter   FoodBankType = "shelter"
)

type FoodBank struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string       `json:"name"`
	Type      FoodBankType `json:"type"`
	Address   string       `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Phone     string       `json:"phone,omitempty"`
	OpenUntil string       `json:"open_until,omitempty"`
	IsActive  bool         `gorm:"default:true" json:"is_active"`

	Donations []*Donation `gorm:"foreignKey:FoodBankID"`
	Timestamp
}
