package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course represents one entry in the course catalog.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`        // The course title.
	Description string    `json:"description"` // Free-text description of the course contents.
	Instructor  string    `json:"instructor"`  // The display name of the person teaching the course.
	Price       float64   `json:"price"`       // Price in the platform's base currency.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
