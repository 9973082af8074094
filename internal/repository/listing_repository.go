package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realty-service/internal/domain"
)

// ListingRepository encapsulates listing persistence.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, limit, offset int) ([]domain.Listing, error)
	Count(ctx context.Context) (int64, error)
}

type listingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository instantiates the repository.
func NewListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &listingRepository{pool: pool}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	const query = `
        INSERT INTO listings (price, address, city, state, description, sqft, bedrooms, bathrooms, cover_image)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		listing.Price,
		listing.Address,
		listing.City,
		listing.State,
		listing.Description,
		listing.Sqft,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.CoverImage,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	const query = `
        UPDATE listings SET price=$1, address=$2, city=$3, state=$4, description=$5,
            sqft=$6, bedrooms=$7, bathrooms=$8, cover_image=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		listing.Price,
		listing.Address,
		listing.City,
		listing.State,
		listing.Description,
		listing.Sqft,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.CoverImage,
		listing.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	const query = `
        SELECT id, price, address, city, state, description, sqft, bedrooms, bathrooms, cover_image, created_at, updated_at
        FROM listings WHERE id=$1`

	var listing domain.Listing
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&listing.ID,
		&listing.Price,
		&listing.Address,
		&listing.City,
		&listing.State,
		&listing.Description,
		&listing.Sqft,
		&listing.Bedrooms,
		&listing.Bathrooms,
		&listing.CoverImage,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	const query = `
        SELECT id, price, address, city, state, description, sqft, bedrooms, bathrooms, cover_image, created_at, updated_at
        FROM listings ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var listing domain.Listing
		if err := rows.Scan(
			&listing.ID,
			&listing.Price,
			&listing.Address,
			&listing.City,
			&listing.State,
			&listing.Description,
			&listing.Sqft,
			&listing.Bedrooms,
			&listing.Bathrooms,
			&listing.CoverImage,
			&listing.CreatedAt,
			&listing.UpdatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
