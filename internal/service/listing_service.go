package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/realty-service/internal/domain"
	"github.com/spec-kit/realty-service/internal/events"
	"github.com/spec-kit/realty-service/internal/persistence"
	"github.com/spec-kit/realty-service/internal/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ListingService coordinates listing CRUD with a Redis read-through cache on
// single-listing fetches.
type ListingService struct {
	listings   repository.ListingRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ListingDependencies bundles collaborators for the listing service.
type ListingDependencies struct {
	ListingRepo repository.ListingRepository
	Cache       *persistence.Redis
	CacheTTL    time.Duration
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// ListingCreateInput describes listing creation payload.
type ListingCreateInput struct {
	Price       int64
	Address     string
	City        string
	State       string
	Description *string
	Sqft        *int
	Bedrooms    int
	Bathrooms   float64
	CoverImage  *string
}

// ListingUpdateInput describes a partial update; nil fields stay untouched.
type ListingUpdateInput struct {
	Price       *int64
	Address     *string
	City        *string
	State       *string
	Description *string
	Sqft        *int
	Bedrooms    *int
	Bathrooms   *float64
	CoverImage  *string
}

// ListingPage wraps a page of listings with pagination metadata.
type ListingPage struct {
	Items   []domain.Listing
	Total   int64
	Page    int
	PerPage int
}

// NewListingService constructs the service.
func NewListingService(deps ListingDependencies) *ListingService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListingService{
		listings:   deps.ListingRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns one page of listings plus the total count.
func (s *ListingService) List(ctx context.Context, page, perPage int) (ListingPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	offset := (page - 1) * perPage

	items, err := s.listings.List(ctx, perPage, offset)
	if err != nil {
		return ListingPage{}, err
	}
	total, err := s.listings.Count(ctx)
	if err != nil {
		return ListingPage{}, err
	}

	return ListingPage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// Get fetches one listing, serving from cache when possible.
func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	key := listingCacheKey(id)

	if cached, hit, err := s.cache.GetString(ctx, key); err != nil {
		s.logger.Warn("listing cache read failed", zap.Error(err))
	} else if hit {
		var listing domain.Listing
		if err := json.Unmarshal([]byte(cached), &listing); err == nil {
			return &listing, nil
		}
		// stale or corrupt entry falls through to the database
		_ = s.cache.Delete(ctx, key)
	}

	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(listing); err == nil {
		if err := s.cache.SetString(ctx, key, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("listing cache write failed", zap.Error(err))
		}
	}
	return listing, nil
}

// Create persists a new listing.
func (s *ListingService) Create(ctx context.Context, actor domain.Identity, input ListingCreateInput) (*domain.Listing, error) {
	listing := &domain.Listing{
		Price:       input.Price,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Description: input.Description,
		Sqft:        input.Sqft,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		CoverImage:  input.CoverImage,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventListingCreated, actor, listing)
	return listing, nil
}

// Update applies a partial update to an existing listing.
func (s *ListingService) Update(ctx context.Context, actor domain.Identity, id int64, input ListingUpdateInput) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Address != nil {
		listing.Address = *input.Address
	}
	if input.City != nil {
		listing.City = *input.City
	}
	if input.State != nil {
		listing.State = *input.State
	}
	if input.Description != nil {
		listing.Description = input.Description
	}
	if input.Sqft != nil {
		listing.Sqft = input.Sqft
	}
	if input.Bedrooms != nil {
		listing.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		listing.Bathrooms = *input.Bathrooms
	}
	if input.CoverImage != nil {
		listing.CoverImage = input.CoverImage
	}

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, events.EventListingUpdated, actor, listing)
	return listing, nil
}

// Delete removes a listing.
func (s *ListingService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, events.EventListingDeleted, actor, &domain.Listing{ID: id})
	return nil
}

func (s *ListingService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, listingCacheKey(id)); err != nil {
		s.logger.Warn("listing cache invalidation failed", zap.Error(err))
	}
}

func (s *ListingService) publish(ctx context.Context, eventType events.EventType, actor domain.Identity, listing *domain.Listing) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{Subject: actor.Subject, Role: actor.Role},
		Timestamp: time.Now(),
		Payload: events.ListingChangedPayload{
			ListingID: listing.ID,
			City:      listing.City,
			State:     listing.State,
			Price:     listing.Price,
		},
	})
}

func listingCacheKey(id int64) string {
	return fmt.Sprintf("listing:%d", id)
}
