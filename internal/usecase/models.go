package usecase

import "github.com/shoplens/go-backend/internal/domain"

// ProductFilter narrows catalog listings. Nil price bounds mean unbounded.
type ProductFilter struct {
	Category      string
	MinPriceCents *int64
	MaxPriceCents *int64
}

// ProductInfo is the product DTO handed to the delivery layer.
type ProductInfo struct {
	ID          int64
	Name        string
	Category    string
	PriceCents  int64
	Rating      float64
	ReviewCount int64
	Discount    float64
}

// CategoryInfo is the category DTO handed to the delivery layer.
type CategoryInfo struct {
	ID   int64
	Name string
}

// ScoredProduct is one entry of an ordered recommendation or ranking result.
type ScoredProduct struct {
	ProductInfo
	Score float64
}

// RecommendReq asks for the top K products similar to a reference product.
type RecommendReq struct {
	ProductID int64
	K         int
}

// ProfileRecommendReq asks for the top K products matching a target profile
// instead of a concrete catalog row.
type ProfileRecommendReq struct {
	PriceCents int64
	Rating     float64
	Discount   float64
	Category   string
	K          int
}

// RecommendRes is an ordered result, best score first.
type RecommendRes struct {
	Results []ScoredProduct
}

// TopReq asks for the top N products by one ranking metric.
type TopReq struct {
	By         string // "value" or "rating"
	N          int
	MinReviews int // only applies to By == "rating"; 0 means configured floor
}

const (
	TopByValue  = "value"
	TopByRating = "rating"
)

// MAPPERS

func NewProductInfo(p *domain.Product) ProductInfo {
	return ProductInfo{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Discount:    p.Discount,
	}
}

func NewRecommendRes(recs []domain.Recommendation) *RecommendRes {
	results := make([]ScoredProduct, 0, len(recs))
	for _, rec := range recs {
		results = append(results, ScoredProduct{
			ProductInfo: NewProductInfo(rec.Product),
			Score:       rec.Score,
		})
	}
	return &RecommendRes{Results: results}
}
