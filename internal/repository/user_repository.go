package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boz-concept/shop-service/internal/domain"
)

// UserRepository defines persistence access for customers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateMembership(ctx context.Context, userID string, active bool, expiresAt *time.Time, requested bool) error
	ListMembershipRequests(ctx context.Context) ([]domain.User, error)
	ListMembers(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, full_name, phone_number, password_hash,
       membership_active, membership_expires_at, membership_requested,
       created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, full_name, phone_number, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.FullName,
		user.PhoneNumber,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, full_name=$2, phone_number=$3, password_hash=$4,
            membership_active=$5, membership_expires_at=$6, membership_requested=$7,
            updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.FullName,
		user.PhoneNumber,
		user.PasswordHash,
		user.MembershipActive,
		user.MembershipExpiresAt,
		user.MembershipRequested,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

// UpdateMembership writes only the membership columns so the lazy
// expiry flip cannot race with concurrent profile edits.
func (r *userRepository) UpdateMembership(ctx context.Context, userID string, active bool, expiresAt *time.Time, requested bool) error {
	const query = `
        UPDATE users SET membership_active=$1, membership_expires_at=$2,
            membership_requested=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, active, expiresAt, requested, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) ListMembershipRequests(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users
        WHERE membership_requested = TRUE AND membership_active = FALSE
        ORDER BY updated_at`
	return r.fetchMany(ctx, query)
}

func (r *userRepository) ListMembers(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users
        WHERE membership_active = TRUE
        ORDER BY membership_expires_at`
	return r.fetchMany(ctx, query)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.MembershipActive,
		&user.MembershipExpiresAt,
		&user.MembershipRequested,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) fetchMany(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FullName,
			&user.PhoneNumber,
			&user.PasswordHash,
			&user.MembershipActive,
			&user.MembershipExpiresAt,
			&user.MembershipRequested,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
