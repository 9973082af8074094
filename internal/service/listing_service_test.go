package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realty-service/internal/domain"
)

type fakeListingRepo struct {
	byID   map[int64]*domain.Listing
	nextID int64
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{byID: make(map[int64]*domain.Listing)}
}

func (f *fakeListingRepo) Create(_ context.Context, listing *domain.Listing) error {
	f.nextID++
	listing.ID = f.nextID
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	stored := *listing
	f.byID[listing.ID] = &stored
	return nil
}

func (f *fakeListingRepo) Update(_ context.Context, listing *domain.Listing) error {
	if _, ok := f.byID[listing.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *listing
	f.byID[listing.ID] = &stored
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	listing, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *listing
	return &copied, nil
}

func (f *fakeListingRepo) List(_ context.Context, limit, offset int) ([]domain.Listing, error) {
	var all []domain.Listing
	for id := int64(1); id <= f.nextID; id++ {
		if listing, ok := f.byID[id]; ok {
			all = append(all, *listing)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeListingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func newTestListingService() (*ListingService, *fakeListingRepo) {
	repo := newFakeListingRepo()
	svc := NewListingService(ListingDependencies{ListingRepo: repo})
	return svc, repo
}

func seedListings(t *testing.T, svc *ListingService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), domain.Identity{Subject: "admin@x.com", Role: domain.RoleAdmin}, ListingCreateInput{
			Price:     259900 + int64(i),
			Address:   "123 Maple St",
			City:      "Des Moines",
			State:     "IA",
			Bedrooms:  3,
			Bathrooms: 1.5,
		})
		require.NoError(t, err)
	}
}

func TestListingCreateAndGet(t *testing.T) {
	svc, _ := newTestListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Identity{}, ListingCreateInput{
		Price:     259900,
		Address:   "123 Maple St",
		City:      "Des Moines",
		State:     "IA",
		Bedrooms:  3,
		Bathrooms: 1.5,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Price, fetched.Price)
	require.Equal(t, created.Address, fetched.Address)
}

func TestListingGetNotFound(t *testing.T) {
	svc, _ := newTestListingService()

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListingPagination(t *testing.T) {
	svc, _ := newTestListingService()
	seedListings(t, svc, 25)

	page, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 10)
	require.EqualValues(t, 25, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 10, page.PerPage)
	require.EqualValues(t, 11, page.Items[0].ID)

	last, err := svc.List(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, last.Items, 5)
}

func TestListingPaginationDefaults(t *testing.T) {
	svc, _ := newTestListingService()
	seedListings(t, svc, 3)

	page, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, defaultPerPage, page.PerPage)
	require.Len(t, page.Items, 3)
}

func TestListingPartialUpdate(t *testing.T) {
	svc, _ := newTestListingService()
	ctx := context.Background()
	seedListings(t, svc, 1)

	newPrice := int64(300000)
	updated, err := svc.Update(ctx, domain.Identity{}, 1, ListingUpdateInput{Price: &newPrice})
	require.NoError(t, err)
	require.Equal(t, newPrice, updated.Price)
	// untouched fields survive
	require.Equal(t, "123 Maple St", updated.Address)
	require.Equal(t, 3, updated.Bedrooms)
}

func TestListingUpdateNotFound(t *testing.T) {
	svc, _ := newTestListingService()

	newPrice := int64(1)
	_, err := svc.Update(context.Background(), domain.Identity{}, 42, ListingUpdateInput{Price: &newPrice})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListingDelete(t *testing.T) {
	svc, repo := newTestListingService()
	ctx := context.Background()
	seedListings(t, svc, 1)

	require.NoError(t, svc.Delete(ctx, domain.Identity{}, 1))
	require.Empty(t, repo.byID)
	require.ErrorIs(t, svc.Delete(ctx, domain.Identity{}, 1), pgx.ErrNoRows)
}
