package http

import (
	"github.com/shoplens/go-backend/internal/analytics"
	"github.com/shoplens/go-backend/internal/usecase"
)

// ProductResponse is the JSON shape of one catalog product. Price is dollars.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"review_count"`
	Discount    float64 `json:"discount"`
}

type ScoredProductResponse struct {
	ProductResponse
	Score float64 `json:"score"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RecommendationsResponse struct {
	Results []ScoredProductResponse `json:"results"`
}

type CategoryStatsResponse struct {
	Category     string  `json:"category"`
	Count        int64   `json:"count"`
	AvgPrice     float64 `json:"avg_price"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int64   `json:"total_reviews"`
}

type BrandStatsResponse struct {
	Brand        string  `json:"brand"`
	Count        int64   `json:"count"`
	AvgPrice     float64 `json:"avg_price"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int64   `json:"total_reviews"`
}

type HistogramBinResponse struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int64   `json:"count"`
}

type DiscountStatsResponse struct {
	DiscountedCount     int64                  `json:"discounted_count"`
	AvgDiscount         float64                `json:"avg_discount"`
	AvgRatingDiscounted float64                `json:"avg_rating_discounted"`
	AvgRatingFullPrice  float64                `json:"avg_rating_full_price"`
	Histogram           []HistogramBinResponse `json:"histogram"`
	TrendSlope          float64                `json:"trend_slope"`
	TrendIntercept      float64                `json:"trend_intercept"`
}

type OverviewResponse struct {
	Count          int64   `json:"count"`
	AvgPrice       float64 `json:"avg_price"`
	AvgRating      float64 `json:"avg_rating"`
	TrendSlope     float64 `json:"trend_slope"`
	TrendIntercept float64 `json:"trend_intercept"`
}

// ProfileRequest is the JSON body for profile-based recommendations.
type ProfileRequest struct {
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Discount float64 `json:"discount"`
	Category string  `json:"category"`
	K        int     `json:"k"`
}

func toProductResponse(p usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       float64(p.PriceCents) / 100,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Discount:    p.Discount,
	}
}

func toRecommendationsResponse(res *usecase.RecommendRes) RecommendationsResponse {
	out := RecommendationsResponse{Results: make([]ScoredProductResponse, 0, len(res.Results))}
	for _, r := range res.Results {
		out.Results = append(out.Results, ScoredProductResponse{
			ProductResponse: toProductResponse(r.ProductInfo),
			Score:           r.Score,
		})
	}
	return out
}

func toCategoryStatsResponse(stats []analytics.CategoryStats) []CategoryStatsResponse {
	out := make([]CategoryStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, CategoryStatsResponse{
			Category:     s.Category,
			Count:        s.Count,
			AvgPrice:     s.AvgPrice,
			AvgRating:    s.AvgRating,
			TotalReviews: s.TotalReviews,
		})
	}
	return out
}

func toBrandStatsResponse(stats []analytics.BrandStats) []BrandStatsResponse {
	out := make([]BrandStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, BrandStatsResponse{
			Brand:        s.Brand,
			Count:        s.Count,
			AvgPrice:     s.AvgPrice,
			AvgRating:    s.AvgRating,
			TotalReviews: s.TotalReviews,
		})
	}
	return out
}

func toDiscountStatsResponse(s *analytics.DiscountStats) DiscountStatsResponse {
	return DiscountStatsResponse{
		DiscountedCount:     s.DiscountedCount,
		AvgDiscount:         s.AvgDiscount,
		AvgRatingDiscounted: s.AvgRatingDiscounted,
		AvgRatingFullPrice:  s.AvgRatingFullPrice,
		Histogram:           toHistogramResponse(s.Histogram),
		TrendSlope:          s.TrendSlope,
		TrendIntercept:      s.TrendIntercept,
	}
}

func toHistogramResponse(bins []analytics.Bin) []HistogramBinResponse {
	out := make([]HistogramBinResponse, 0, len(bins))
	for _, b := range bins {
		out = append(out, HistogramBinResponse{Low: b.Low, High: b.High, Count: b.Count})
	}
	return out
}
