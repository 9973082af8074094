package events

import (
	"time"

	"github.com/spec-kit/realty-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventListingCreated EventType = "listing_created"
	EventListingUpdated EventType = "listing_updated"
	EventListingDeleted EventType = "listing_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Subject string      `json:"subject,omitempty"`
	Role    domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// ListingChangedPayload payload for listing create/update/delete.
type ListingChangedPayload struct {
	ListingID int64  `json:"listing_id"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Price     int64  `json:"price,omitempty"`
}
