package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realty-service/internal/domain"
)

// RoleRepository resolves role records by id set during registration.
type RoleRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.RoleRecord, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.RoleRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
        SELECT id, name, description
        FROM roles WHERE id = ANY($1) ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RoleRecord
	for rows.Next() {
		var record domain.RoleRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Description); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
