package entities

import (
	"github.com/google/uuid"
)

type Scan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ImageURL    string    `json:"image_url"` // object key, resolved to a URL on read
	Predictions string    `gorm:"type:text" json:"predictions"` // JSON-encoded ranked list
	Confidence  float64   `json:"confidence"`
	IsLowConf   bool      `json:"is_low_conf"`
	Notes       string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
