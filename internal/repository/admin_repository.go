package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boz-concept/shop-service/internal/domain"
)

// AdminRepository defines persistence access for back-office operators.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (email, full_name, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		admin.Email,
		admin.FullName,
		admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const query = `
        SELECT id, email, full_name, password_hash, created_at, updated_at
        FROM admins WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `
        SELECT id, email, full_name, password_hash, created_at, updated_at
        FROM admins WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *adminRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.FullName,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
