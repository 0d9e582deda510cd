package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shoplens/go-backend/internal/analytics"
	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/internal/recommender"
	"github.com/shoplens/go-backend/internal/seed"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

type fakeProductRepo struct {
	products []*domain.Product
}

func (f *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) ListFiltered(_ context.Context, filter *ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPriceCents != nil && p.PriceCents < *filter.MinPriceCents {
			continue
		}
		if filter.MaxPriceCents != nil && p.PriceCents > *filter.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(seed.Categories))
	for i, name := range seed.Categories {
		out = append(out, &domain.Category{ID: int64(i + 1), Name: name})
	}
	return out, nil
}

func newTestUC(t *testing.T) (*CatalogUseCase, *fakeProductRepo) {
	t.Helper()

	recCfg := &cfg.RecommenderCfg{
		SimWeight: 0.7, RatingWeight: 0.5, DiscountWeight: 0.2, PriceWeight: 0.3,
		DefaultTopK: 5,
	}
	anCfg := &cfg.AnalyticsCfg{MinReviews: 10, DefaultTopN: 8, DefaultBins: 20}

	repo := &fakeProductRepo{}
	for i, sp := range seed.Generate(125, 42) {
		repo.products = append(repo.products, &domain.Product{
			ID:          int64(i + 1),
			Name:        sp.Name,
			Category:    sp.Category,
			PriceCents:  sp.PriceCents,
			Rating:      sp.Rating,
			ReviewCount: sp.ReviewCount,
			Discount:    sp.Discount,
		})
	}

	uc := NewCatalogUC(
		repo, &fakeCategoryRepo{},
		recommender.New(recCfg), analytics.New(anCfg),
		recCfg, anCfg, logger.NewSlogLogger(),
	)
	return uc, repo
}

func TestListProductsFilter(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	all, err := uc.ListProducts(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 125 {
		t.Fatalf("expected 125 products, got %d", len(all))
	}

	toys, err := uc.ListProducts(ctx, &ProductFilter{Category: "Toys"})
	if err != nil {
		t.Fatalf("list toys: %v", err)
	}
	if len(toys) != 25 {
		t.Fatalf("expected 25 toys, got %d", len(toys))
	}

	none, err := uc.ListProducts(ctx, &ProductFilter{Category: "Groceries"})
	if err != nil {
		t.Fatalf("unknown category must yield empty result, got error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestListProductsInvertedRangeEmpty(t *testing.T) {
	uc, _ := newTestUC(t)

	min, max := int64(5000000), int64(1000)
	out, err := uc.ListProducts(context.Background(), &ProductFilter{MinPriceCents: &min, MaxPriceCents: &max})
	if err != nil {
		t.Fatalf("inverted range must yield empty result, got error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d products", len(out))
	}
}

func TestRecommendDefaults(t *testing.T) {
	uc, repo := newTestUC(t)

	res, err := uc.Recommend(context.Background(), &RecommendReq{ProductID: repo.products[3].ID})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(res.Results) != 5 {
		t.Fatalf("expected default top 5, got %d", len(res.Results))
	}
	for _, r := range res.Results {
		if r.ID == repo.products[3].ID {
			t.Fatalf("reference product in its own results")
		}
	}
}

func TestRecommendUnknownProduct(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.Recommend(context.Background(), &RecommendReq{ProductID: 424242})
	if !errors.Is(err, e.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRecommendProfileValidation(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	if _, err := uc.RecommendProfile(ctx, &ProfileRecommendReq{Rating: 9}); !errors.Is(err, e.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := uc.RecommendProfile(ctx, &ProfileRecommendReq{Discount: 150}); !errors.Is(err, e.ErrInvalidDiscount) {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
	if _, err := uc.RecommendProfile(ctx, &ProfileRecommendReq{Category: "Groceries"}); !errors.Is(err, e.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	// zero rating means "no preference" and sits inside the valid bound
	if _, err := uc.RecommendProfile(ctx, &ProfileRecommendReq{Rating: 0}); err != nil {
		t.Fatalf("rating 0 must be accepted, got %v", err)
	}

	res, err := uc.RecommendProfile(ctx, &ProfileRecommendReq{
		PriceCents: 4999, Rating: 4.5, Discount: 10, Category: "Beauty", K: 3,
	})
	if err != nil {
		t.Fatalf("valid profile: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Results))
	}
}

func TestDiscountAnalytics(t *testing.T) {
	uc, repo := newTestUC(t)

	stats, err := uc.DiscountAnalytics(context.Background(), 0)
	if err != nil {
		t.Fatalf("discount analytics: %v", err)
	}

	var discounted int64
	for _, p := range repo.products {
		if p.Discount > 0 {
			discounted++
		}
	}
	if stats.DiscountedCount != discounted {
		t.Fatalf("discounted count %d, expected %d", stats.DiscountedCount, discounted)
	}
	// bins=0 falls back to the configured default
	if len(stats.Histogram) != 20 {
		t.Fatalf("expected 20 default bins, got %d", len(stats.Histogram))
	}
}

func TestTopProducts(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	byValue, err := uc.TopProducts(ctx, &TopReq{By: TopByValue, N: 8})
	if err != nil {
		t.Fatalf("top by value: %v", err)
	}
	if len(byValue.Results) != 8 {
		t.Fatalf("expected 8 results, got %d", len(byValue.Results))
	}

	byRating, err := uc.TopProducts(ctx, &TopReq{By: TopByRating, N: 8})
	if err != nil {
		t.Fatalf("top by rating: %v", err)
	}
	for _, r := range byRating.Results {
		if r.ReviewCount < 10 {
			t.Fatalf("top rated includes %s with only %d reviews", r.Name, r.ReviewCount)
		}
	}

	if _, err := uc.TopProducts(ctx, &TopReq{By: "price"}); !errors.Is(err, e.ErrInvalidTopBy) {
		t.Fatalf("expected ErrInvalidTopBy, got %v", err)
	}
}

func TestOverviewAndCategoryAnalyticsAgree(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	stats, err := uc.CategoryAnalytics(ctx)
	if err != nil {
		t.Fatalf("category analytics: %v", err)
	}
	overview, err := uc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	var count int64
	for _, s := range stats {
		count += s.Count
	}
	if count != overview.Count {
		t.Fatalf("category counts %d != overview count %d", count, overview.Count)
	}
}

func TestEmptyCatalog(t *testing.T) {
	uc, repo := newTestUC(t)
	repo.products = nil

	_, err := uc.Overview(context.Background())
	if !errors.Is(err, e.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
