package models

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents a registered pet. Pets are updated by full replacement
// only; there is no partial-field patch operation.
type Pet struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
