package sqlite

import (
	"context"
	"database/sql"

	"github.com/jimlawless/whereami"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/internal/repository/sqlite/converter"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/tr"
)

// CategoryRepo implements the category repository over SQLite.
type CategoryRepo struct {
	db   *sql.DB
	conv converter.CategoryConverter
}

func NewCategoryRepo(db *sql.DB, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{db: db, conv: conv}
}

// Create idempotently creates a category by name inside the seeding
// transaction and returns the stored row either way.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	insert := `
		INSERT INTO categories(name) VALUES (?)
		ON CONFLICT (name) DO NOTHING;
	`
	if _, err := tx.ExecContext(ctx, insert, category.Name); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT id, name, created_at FROM categories WHERE name = ?`

	var model converter.CategoryModel
	if err := tx.QueryRowContext(ctx, query, category.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List returns all categories in insertion order.
func (c *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY id`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
