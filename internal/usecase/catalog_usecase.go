package usecase

import (
	"context"

	"github.com/shoplens/go-backend/internal/analytics"
	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/internal/recommender"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

// CatalogUseCase implements the catalog business logic: listings,
// recommendations and analytics over the seeded product catalog.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	rec          *recommender.Recommender
	agg          *analytics.Aggregator
	recCfg       *cfg.RecommenderCfg
	analyticsCfg *cfg.AnalyticsCfg
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	rec *recommender.Recommender,
	agg *analytics.Aggregator,
	recCfg *cfg.RecommenderCfg,
	analyticsCfg *cfg.AnalyticsCfg,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		rec:          rec,
		agg:          agg,
		recCfg:       recCfg,
		analyticsCfg: analyticsCfg,
		logger:       logger,
	}
}

// ListProducts returns catalog rows matching the filter. An unsatisfiable
// filter, such as an unknown category or an inverted price range, selects
// nothing; the result is an empty slice, not an error.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	if filter == nil {
		filter = &ProductFilter{}
	}

	products, err := c.productRepo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ProductInfo, 0, len(products))
	for _, p := range products {
		result = append(result, NewProductInfo(p))
	}

	return result, nil
}

// GetProduct returns one product or e.ErrProductNotFound.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(product)
	return &info, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CategoryInfo, 0, len(categories))
	for _, cat := range categories {
		result = append(result, CategoryInfo{ID: cat.ID, Name: cat.Name})
	}

	return result, nil
}

// Recommend returns the top K products similar to the reference product,
// excluding the reference. Unknown reference yields e.ErrProductNotFound.
func (c *CatalogUseCase) Recommend(ctx context.Context, req *RecommendReq) (*RecommendRes, error) {
	const op = "CatalogUseCase.Recommend"

	k := req.K
	if k <= 0 {
		k = c.recCfg.DefaultTopK
	}

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	recs, err := c.rec.Recommend(products, req.ProductID, k)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewRecommendRes(recs), nil
}

// RecommendProfile ranks the catalog against a synthetic target profile.
func (c *CatalogUseCase) RecommendProfile(ctx context.Context, req *ProfileRecommendReq) (*RecommendRes, error) {
	const op = "CatalogUseCase.RecommendProfile"

	if req.Rating < 0 || req.Rating > 5 {
		return nil, e.Wrap(op, e.ErrInvalidRating)
	}
	if req.Discount < 0 || req.Discount > 100 {
		return nil, e.Wrap(op, e.ErrInvalidDiscount)
	}

	k := req.K
	if k <= 0 {
		k = c.recCfg.DefaultTopK
	}

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	if req.Category != "" && !categoryExists(products, req.Category) {
		return nil, e.Wrap(op, e.ErrUnknownCategory)
	}

	recs := c.rec.RecommendProfile(products, recommender.Profile{
		Price:    float64(req.PriceCents) / 100,
		Rating:   req.Rating,
		Discount: req.Discount,
		Category: req.Category,
	}, k)

	return NewRecommendRes(recs), nil
}

func (c *CatalogUseCase) CategoryAnalytics(ctx context.Context) ([]analytics.CategoryStats, error) {
	const op = "CatalogUseCase.CategoryAnalytics"

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	return c.agg.CategoryStats(products), nil
}

// TopProducts ranks the catalog by value score or by rating.
func (c *CatalogUseCase) TopProducts(ctx context.Context, req *TopReq) (*RecommendRes, error) {
	const op = "CatalogUseCase.TopProducts"

	n := req.N
	if n <= 0 {
		n = c.analyticsCfg.DefaultTopN
	}

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	var recs []domain.Recommendation
	switch req.By {
	case TopByValue, "":
		space := recommender.NewFeatureSpace(products)
		recs = c.agg.TopValue(products, func(p *domain.Product) float64 {
			return c.rec.ValueScore(space, p)
		}, n)
	case TopByRating:
		recs = c.agg.TopRated(products, n, req.MinReviews)
	default:
		return nil, e.Wrap(op, e.ErrInvalidTopBy)
	}

	return NewRecommendRes(recs), nil
}

func (c *CatalogUseCase) PriceHistogram(ctx context.Context, bins int) ([]analytics.Bin, error) {
	const op = "CatalogUseCase.PriceHistogram"

	if bins <= 0 {
		bins = c.analyticsCfg.DefaultBins
	}

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	return c.agg.PriceHistogram(products, bins), nil
}

func (c *CatalogUseCase) DiscountAnalytics(ctx context.Context, bins int) (*analytics.DiscountStats, error) {
	const op = "CatalogUseCase.DiscountAnalytics"

	if bins <= 0 {
		bins = c.analyticsCfg.DefaultBins
	}

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	stats := c.agg.DiscountStats(products, bins)
	return &stats, nil
}

func (c *CatalogUseCase) BrandAnalytics(ctx context.Context) ([]analytics.BrandStats, error) {
	const op = "CatalogUseCase.BrandAnalytics"

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	return c.agg.BrandStats(products), nil
}

func (c *CatalogUseCase) Overview(ctx context.Context) (*analytics.Overview, error) {
	const op = "CatalogUseCase.Overview"

	products, err := c.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	overview := c.agg.Overview(products)
	return &overview, nil
}

// catalog loads the full catalog in insertion order. The dataset is small
// and immutable, so every request recomputes from a fresh read.
func (c *CatalogUseCase) catalog(ctx context.Context, op string) ([]*domain.Product, error) {
	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		c.logger.Warnf("%s: catalog is empty", op)
		return nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	return products, nil
}

func categoryExists(products []*domain.Product, name string) bool {
	for _, p := range products {
		if p.Category == name {
			return true
		}
	}
	return false
}
