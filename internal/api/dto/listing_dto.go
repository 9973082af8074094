package dto

import (
	"time"

	"github.com/spec-kit/realty-service/internal/domain"
)

// ListingCreateRequest payload for new listings.
type ListingCreateRequest struct {
	Price       int64   `json:"price"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Description *string `json:"description"`
	Sqft        *int    `json:"sqft"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   float64 `json:"bathrooms"`
	CoverImage  *string `json:"cover_image"`
}

// ListingUpdateRequest payload for partial updates; nil fields are untouched.
type ListingUpdateRequest struct {
	Price       *int64   `json:"price"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Description *string  `json:"description"`
	Sqft        *int     `json:"sqft"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *float64 `json:"bathrooms"`
	CoverImage  *string  `json:"cover_image"`
}

// ListingResponse view of a listing.
type ListingResponse struct {
	ID          int64     `json:"id"`
	Price       int64     `json:"price"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Description *string   `json:"description,omitempty"`
	Sqft        *int      `json:"sqft,omitempty"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	CoverImage  *string   `json:"cover_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaginatedListingsResponse wraps a page of listings.
type PaginatedListingsResponse struct {
	Items   []ListingResponse `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// NewListingResponse maps a domain listing to its view.
func NewListingResponse(listing *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:          listing.ID,
		Price:       listing.Price,
		Address:     listing.Address,
		City:        listing.City,
		State:       listing.State,
		Description: listing.Description,
		Sqft:        listing.Sqft,
		Bedrooms:    listing.Bedrooms,
		Bathrooms:   listing.Bathrooms,
		CoverImage:  listing.CoverImage,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}
