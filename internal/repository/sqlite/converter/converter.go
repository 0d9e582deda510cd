package converter

import "github.com/shoplens/go-backend/internal/domain"

// ProductConverter maps Product between domain and the SQLite model.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter maps Category between domain and the SQLite model.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:           entity.ID,
		Name:         entity.Name,
		CategoryID:   entity.CategoryID,
		CategoryName: entity.Category,
		Price:        entity.PriceCents,
		Rating:       entity.Rating,
		ReviewCount:  entity.ReviewCount,
		Discount:     entity.Discount,
		CreatedAt:    entity.CreatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		CategoryID:  model.CategoryID,
		Category:    model.CategoryName,
		PriceCents:  model.Price,
		Rating:      model.Rating,
		ReviewCount: model.ReviewCount,
		Discount:    model.Discount,
		CreatedAt:   model.CreatedAt,
	}
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}
