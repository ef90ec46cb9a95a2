package models

// User represents a row of the users table.
// swagger:model User
type User struct {
	ID             int64  `json:"id_user" db:"id_user"`               // Surrogate key
	Name           string `json:"name" db:"name"`                     // Full name
	Identification string `json:"identification" db:"identification"` // External unique identifier, e.g. national ID
	Email          string `json:"email" db:"email"`
	Phone          string `json:"phone" db:"phone"`
}
