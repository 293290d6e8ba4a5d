package models

import "github.com/google/uuid"

// DogDB represents a dog record in the database
type DogDB struct {
	DogID    uuid.UUID `json:"id" db:"dogid"`           // Primary key
	Name     string    `json:"name" db:"dogname"`       // Dog name
	Breed    string    `json:"breed" db:"breed"`        // Breed name
	Age      int       `json:"age" db:"age"`            // Age in years
	UserID   uuid.UUID `json:"-" db:"userid"`           // Owning user
	ImageURL string    `json:"image_url" db:"imageurl"` // Blob URL of the dog image, empty when none uploaded
}
