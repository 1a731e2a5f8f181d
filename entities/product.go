package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"` // "organic", "inorganic"
	TargetDiseases string    `gorm:"type:text" json:"target_diseases,omitempty"` // JSON-encoded list
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	Price          float64   `json:"price,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`

	Timestamp
}
