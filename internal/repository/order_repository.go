package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boz-concept/shop-service/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	// CreateAndClearCart records the order and empties the owner's cart
	// in one transaction, closing the duplicate-checkout window.
	CreateAndClearCart(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) CreateAndClearCart(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertOrder = `
        INSERT INTO orders (user_id, total, shipping_address, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	if err := tx.QueryRow(ctx, insertOrder,
		order.UserID,
		order.Total,
		order.ShippingAddress,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (order_id, product_id, quantity)
        VALUES ($1, $2, $3)`

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, order.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, total, shipping_address, status, created_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&order.ShippingAddress,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, total, shipping_address, status, created_at
        FROM orders WHERE user_id=$1
        ORDER BY created_at DESC`
	return r.fetchMany(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, total, shipping_address, status, created_at
        FROM orders
        ORDER BY created_at DESC`
	return r.fetchMany(ctx, query)
}

func (r *orderRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Total,
			&order.ShippingAddress,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	const query = `
        SELECT product_id, quantity
        FROM order_items WHERE order_id=$1
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = order.Items[:0]
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}
