package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/internal/repository/sqlite/converter"
	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/tr"
)

// ProductRepo implements the product repository over SQLite.
type ProductRepo struct {
	db   *sql.DB
	conv converter.ProductConverter
}

func NewProductRepo(db *sql.DB, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		db:   db,
		conv: conv,
	}
}

const productColumns = `
	pr.id, pr.name, pr.category_id, cat.name, pr.price, pr.rating, pr.review_count, pr.discount, pr.created_at
`

// List returns the whole catalog in insertion order.
func (p *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		ORDER BY pr.id
	`

	return p.queryProducts(ctx, query)
}

// ListFiltered returns catalog rows matching the filter, in insertion order.
// A filter that matches nothing yields an empty slice, not an error.
func (p *ProductRepo) ListFiltered(ctx context.Context, filter *usecase.ProductFilter) ([]*domain.Product, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Category != "" {
		conds = append(conds, "cat.name = ?")
		args = append(args, filter.Category)
	}
	if filter.MinPriceCents != nil {
		conds = append(conds, "pr.price >= ?")
		args = append(args, *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		conds = append(conds, "pr.price <= ?")
		args = append(args, *filter.MaxPriceCents)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY pr.id"

	return p.queryProducts(ctx, query, args...)
}

// GetByID returns one product or e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ?
	`

	var model converter.ProductModel
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.CategoryID, &model.CategoryName,
		&model.Price, &model.Rating, &model.ReviewCount, &model.Discount, &model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Count returns the number of catalog rows.
func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// Insert adds one product inside the seeding transaction carried by ctx.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, category_id, price, rating, review_count, discount)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := tx.ExecContext(ctx, query,
		product.Name, product.CategoryID, product.PriceCents,
		product.Rating, product.ReviewCount, product.Discount,
	)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.CategoryID, &model.CategoryName,
			&model.Price, &model.Rating, &model.ReviewCount, &model.Discount, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
