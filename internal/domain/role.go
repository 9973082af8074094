package domain

import "fmt"

// Role labels an account's authorization level. The set of recognized values
// is closed; anything else is rejected at registration time.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

// DefaultRole is assigned when registration does not specify one.
const DefaultRole = RoleUser

// ParseRole validates a role label against the recognized set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleStaff, RoleUser:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unrecognized role %q", value)
	}
}

// RoleRecord models a row of the roles table. Registration may attach roles
// by id; the first resolved role becomes the user's role label.
type RoleRecord struct {
	ID          int64
	Name        Role
	Description *string
}
