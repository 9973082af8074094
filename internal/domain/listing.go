package domain

import "time"

// Listing is a real-estate listing record.
type Listing struct {
	ID          int64
	Price       int64
	Address     string
	City        string
	State       string
	Description *string
	Sqft        *int
	Bedrooms    int
	Bathrooms   float64
	CoverImage  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
