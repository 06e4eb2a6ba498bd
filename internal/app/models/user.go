package models

import (
	"time"
)

// Identity defines the base account model based on the 'users' table.
// Every authenticated user has exactly one Identity; the role-specific
// profile row is provisioned automatically when the Identity is created.
type Identity struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                    // Unique login name
	Email     string    `json:"email" db:"email" example:"user@school.edu"`               // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                          // Bcrypt hash (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	Role      Role      `json:"role" db:"role" example:"STUDENT"`                         // ADMIN, STAFF or STUDENT
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// FullName returns the display name used in attendance and result listings.
func (i *Identity) FullName() string {
	if i.FirstName == "" && i.LastName == "" {
		return i.Username
	}
	return i.FirstName + " " + i.LastName
}
