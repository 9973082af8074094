package domain

// Identity is the authenticated caller reconstructed from a decoded token on
// every request. It is transient and never stored.
type Identity struct {
	Subject string
	Role    Role
}
