package entities

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleHostel     UserRole = "hostel"
	RoleRestaurant UserRole = "restaurant"
	RoleNGO        UserRole = "ngo"
)

// UserProfile is keyed by the identity provider's subject id. One row per
// subject; created lazily on the first authenticated request.
type UserProfile struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FirebaseUID string     `gorm:"uniqueIndex" json:"firebase_uid"`
	Role        UserRole   `json:"role"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	FoodBankID  *uuid.UUID `json:"food_bank_id,omitempty"`

	FoodBank *FoodBank `gorm:"foreignKey:FoodBankID" json:"food_bank,omitempty"`
	Timestamp
}
