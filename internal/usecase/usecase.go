package usecase

import (
	"context"

	"github.com/shoplens/go-backend/internal/analytics"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	ListCategories(ctx context.Context) ([]CategoryInfo, error)

	Recommend(ctx context.Context, req *RecommendReq) (*RecommendRes, error)
	RecommendProfile(ctx context.Context, req *ProfileRecommendReq) (*RecommendRes, error)

	CategoryAnalytics(ctx context.Context) ([]analytics.CategoryStats, error)
	TopProducts(ctx context.Context, req *TopReq) (*RecommendRes, error)
	PriceHistogram(ctx context.Context, bins int) ([]analytics.Bin, error)
	DiscountAnalytics(ctx context.Context, bins int) (*analytics.DiscountStats, error)
	BrandAnalytics(ctx context.Context) ([]analytics.BrandStats, error)
	Overview(ctx context.Context) (*analytics.Overview, error)
}
