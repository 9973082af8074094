package domain

import "time"

// User is the domain model for registered accounts. Emails are stored
// lower-cased; only the bcrypt hash of the password is ever persisted.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
