package models

import "github.com/google/uuid"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"userid"`       // Primary key
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"upassword"`          // Bcrypt password hash
	FirstName    string    `json:"first_name" db:"firstname"` // First name
	LastName     string    `json:"last_name" db:"lastname"`   // Last name
	BirthDate    string    `json:"birth_date" db:"birthdate"` // Birth date as provided at registration
	Country      string    `json:"country" db:"country"`      // Country of residence
}
