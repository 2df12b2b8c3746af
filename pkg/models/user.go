package models

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64   `json:"id" db:"id"`                 // Primary key
	Email     string  `json:"email" db:"email"`           // Unique login key
	Password  string  `json:"password" db:"password"`     // Stored as entered
	FirstName *string `json:"first_name" db:"first_name"` // Optional
	LastName  *string `json:"last_name" db:"last_name"`   // Optional
	Phone     *string `json:"phone" db:"phone"`           // Optional
}

// MinimalUserInfo is the user projection returned by find_all.
// It carries everything except the password.
// swagger:model MinimalUserInfo
type MinimalUserInfo struct {
	ID        int64   `json:"id" db:"id"`
	Email     string  `json:"email" db:"email"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	Phone     *string `json:"phone" db:"phone"`
}

// NewUser is the profile-update body: a full replace of the optional
// fields, keyed by email.
// swagger:model NewUser
type NewUser struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}
