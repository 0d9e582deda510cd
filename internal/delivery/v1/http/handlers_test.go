package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shoplens/go-backend/internal/analytics"
	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

// stubUC returns canned data so handler behavior can be tested in isolation.
type stubUC struct{}

func (s *stubUC) ListProducts(_ context.Context, filter *usecase.ProductFilter) ([]usecase.ProductInfo, error) {
	if filter.Category == "Groceries" {
		return []usecase.ProductInfo{}, nil
	}
	if filter.MinPriceCents != nil && filter.MaxPriceCents != nil &&
		*filter.MinPriceCents > *filter.MaxPriceCents {
		return []usecase.ProductInfo{}, nil
	}
	return []usecase.ProductInfo{
		{ID: 1, Name: "Samsung Pro Monitor 1", Category: "Electronics", PriceCents: 19999, Rating: 4.5, ReviewCount: 120, Discount: 10},
	}, nil
}

func (s *stubUC) GetProduct(_ context.Context, id int64) (*usecase.ProductInfo, error) {
	if id != 1 {
		return nil, e.ErrProductNotFound
	}
	return &usecase.ProductInfo{ID: 1, Name: "Samsung Pro Monitor 1", Category: "Electronics", PriceCents: 19999}, nil
}

func (s *stubUC) ListCategories(_ context.Context) ([]usecase.CategoryInfo, error) {
	return []usecase.CategoryInfo{{ID: 1, Name: "Electronics"}}, nil
}

func (s *stubUC) Recommend(_ context.Context, req *usecase.RecommendReq) (*usecase.RecommendRes, error) {
	if req.ProductID != 1 {
		return nil, e.ErrProductNotFound
	}
	return &usecase.RecommendRes{Results: []usecase.ScoredProduct{
		{ProductInfo: usecase.ProductInfo{ID: 2, Name: "Dell Ultra Monitor 1", PriceCents: 24999}, Score: 0.91},
	}}, nil
}

func (s *stubUC) RecommendProfile(_ context.Context, req *usecase.ProfileRecommendReq) (*usecase.RecommendRes, error) {
	if req.Rating > 5 {
		return nil, e.ErrInvalidRating
	}
	return &usecase.RecommendRes{Results: []usecase.ScoredProduct{}}, nil
}

func (s *stubUC) CategoryAnalytics(_ context.Context) ([]analytics.CategoryStats, error) {
	return []analytics.CategoryStats{{Category: "Electronics", Count: 25, AvgPrice: 199.99, AvgRating: 4.2, TotalReviews: 1200}}, nil
}

func (s *stubUC) TopProducts(_ context.Context, req *usecase.TopReq) (*usecase.RecommendRes, error) {
	if req.By != "" && req.By != usecase.TopByValue && req.By != usecase.TopByRating {
		return nil, e.ErrInvalidTopBy
	}
	return &usecase.RecommendRes{Results: []usecase.ScoredProduct{}}, nil
}

func (s *stubUC) PriceHistogram(_ context.Context, bins int) ([]analytics.Bin, error) {
	return []analytics.Bin{{Low: 0, High: 100, Count: 25}}, nil
}

func (s *stubUC) DiscountAnalytics(_ context.Context, bins int) (*analytics.DiscountStats, error) {
	return &analytics.DiscountStats{
		DiscountedCount:     60,
		AvgDiscount:         17.5,
		AvgRatingDiscounted: 4.1,
		AvgRatingFullPrice:  4.3,
		Histogram:           []analytics.Bin{{Low: 5, High: 50, Count: 60}},
	}, nil
}

func (s *stubUC) BrandAnalytics(_ context.Context) ([]analytics.BrandStats, error) {
	return []analytics.BrandStats{{Brand: "Samsung", Count: 5, AvgPrice: 300, AvgRating: 4.4, TotalReviews: 800}}, nil
}

func (s *stubUC) Overview(_ context.Context) (*analytics.Overview, error) {
	return &analytics.Overview{Count: 125, AvgPrice: 150.5, AvgRating: 4.1}, nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	NewRouter(mux, logger.NewSlogLogger()).Init(&stubUC{})
	return mux
}

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)
	return rec
}

func TestListProductsOK(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []ProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 || products[0].Price != 199.99 {
		t.Fatalf("unexpected body: %+v", products)
	}
}

func TestListProductsEmptyFilter(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products?category=Groceries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("empty filter result must be 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestListProductsInvertedRange(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products?min_price=500&max_price=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("inverted range must be 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestListProductsBadPrice(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products?min_price=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != http.StatusNotFound {
		t.Fatalf("error envelope code: %d", errResp.Code)
	}
}

func TestRecommendationsOK(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products/1/recommendations?k=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res RecommendationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].Score != 0.91 {
		t.Fatalf("unexpected body: %+v", res)
	}
}

func TestRecommendationsBadK(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/products/1/recommendations?k=-2", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileRecommendations(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/recommendations/profile",
		`{"price": 49.99, "rating": 4.5, "discount": 20, "category": "Electronics", "k": 5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, http.MethodPost, "/api/v1/recommendations/profile", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", rec.Code)
	}
}

func TestAnalyticsEndpoints(t *testing.T) {
	for _, target := range []string{
		"/api/v1/analytics/categories",
		"/api/v1/analytics/top?by=value&n=8",
		"/api/v1/analytics/price-histogram?bins=10",
		"/api/v1/analytics/discounts?bins=10",
		"/api/v1/analytics/brands",
		"/api/v1/analytics/overview",
	} {
		rec := doRequest(t, http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
	}
}

func TestDiscountAnalytics(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/analytics/discounts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res DiscountStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DiscountedCount != 60 || res.AvgDiscount != 17.5 {
		t.Fatalf("unexpected body: %+v", res)
	}

	rec = doRequest(t, http.MethodGet, "/api/v1/analytics/discounts?bins=0", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bins=0: expected 400, got %d", rec.Code)
	}
}

func TestDashboardServed(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/categories", "")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("request id header not set")
	}
}
