package entities

import (
	"time"

	"github.com/google/uuid"
)

type SurplusStatus string

const (
	SurplusStatusAvailable SurplusStatus = "available"
	SurplusStatusClaimed   SurplusStatus = "claimed"
	SurplusStatusCompleted SurplusStatus = "completed"
)

// SurplusPost is a prepared-food posting in the NGO-claim flow: a donor posts
// surplus food, an NGO claims it before it expires, and either party marks
// the handover complete. ClaimedBy is set once at claim time and never
// cleared.
type SurplusPost struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID     string        `gorm:"index" json:"donor_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Quantity    float64       `json:"quantity"`
	Unit        string        `json:"unit"`
	ExpiresAt   time.Time     `gorm:"index" json:"expires_at"`
	Status      SurplusStatus `gorm:"index" json:"status"`
	ClaimedBy   *string       `json:"claimed_by,omitempty"`
	ClaimedAt   *time.Time    `json:"claimed_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`

	Timestamp
}
