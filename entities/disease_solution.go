package entities

import (
	"github.com/google/uuid"
)

type DiseaseSolution struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	CommonNames string    `gorm:"type:text" json:"common_names,omitempty"` // JSON-encoded list
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Solutions   string    `gorm:"type:text" json:"solutions,omitempty"` // JSON-encoded list

	Timestamp
}
