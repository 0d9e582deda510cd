package usecase

import (
	"context"

	"github.com/shoplens/go-backend/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	ListFiltered(ctx context.Context, filter *ProductFilter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
}
