package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boz-concept/shop-service/internal/domain"
)

// CartRepository persists per-user cart entries. One row per
// (user, product) pair; the cart itself exists lazily, as soon as its
// first entry is written.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddOrIncrement(ctx context.Context, userID, productID string, quantity int) (int, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	Remove(ctx context.Context, userID, productID string) (int, error)
	Clear(ctx context.Context, userID string) error
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository instantiates repository.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const query = `
        SELECT product_id, quantity
        FROM cart_items WHERE user_id=$1
        ORDER BY added_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddOrIncrement upserts an entry, bumping quantity when the product is
// already carted, and returns the resulting entry count.
func (r *cartRepository) AddOrIncrement(ctx context.Context, userID, productID string, quantity int) (int, error) {
	const query = `
        INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	if _, err := r.pool.Exec(ctx, query, userID, productID, quantity); err != nil {
		return 0, err
	}
	return r.count(ctx, userID)
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	const query = `
        UPDATE cart_items SET quantity=$1
        WHERE user_id=$2 AND product_id=$3`

	cmd, err := r.pool.Exec(ctx, query, quantity, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Remove deletes the entry if present; removing an absent entry is not
// an error. Returns the remaining entry count.
func (r *cartRepository) Remove(ctx context.Context, userID, productID string) (int, error) {
	const query = `DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2`
	if _, err := r.pool.Exec(ctx, query, userID, productID); err != nil {
		return 0, err
	}
	return r.count(ctx, userID)
}

func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *cartRepository) count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}
