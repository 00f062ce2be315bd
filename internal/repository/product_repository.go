package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boz-concept/shop-service/internal/domain"
)

// ProductFilter captures public catalog listing parameters. Price
// bounds are applied by the service on the effective (discounted or
// base) price, not here.
type ProductFilter struct {
	Category   *string
	SearchTerm *string
}

// ProductRepository encapsulates catalog persistence. The catalog is
// read-only from this service's point of view; products are managed
// out of band.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository instantiates repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, product_name, category, price, discounted_price, membership_price,
       description, dimensions, materials, colors, barcode, stock_status, stock_amount,
       image_urls, category_order, best_seller, sales_count, best_seller_rank,
       created_at, updated_at`

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`

	var product domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(productFields(&product)...); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.SearchTerm != nil {
		args = append(args, "%"+*filter.SearchTerm+"%")
		conditions = append(conditions, fmt.Sprintf("product_name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, category_order NULLS LAST, product_name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(productFields(&product)...); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func productFields(p *domain.Product) []any {
	return []any{
		&p.ID,
		&p.ProductName,
		&p.Category,
		&p.Price,
		&p.DiscountedPrice,
		&p.MembershipPrice,
		&p.Description,
		&p.Dimensions,
		&p.Materials,
		&p.Colors,
		&p.Barcode,
		&p.StockStatus,
		&p.StockAmount,
		&p.ImageURLs,
		&p.CategoryOrder,
		&p.BestSeller,
		&p.SalesCount,
		&p.BestSellerRank,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
