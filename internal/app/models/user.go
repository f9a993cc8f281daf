package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name       string    `json:"name" db:"name" example:"Jane Doe"`                        // Display name
	Email      string    `json:"email" db:"email" example:"jane@campus.edu"`               // User's email address, unique
	Password   string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role       Role      `json:"role" db:"role" example:"student"`                         // admin, faculty or student
	Department string    `json:"department,omitempty" db:"department" example:"CS"`        // Department the user belongs to
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
