package recommender

import (
	"math"
	"sort"

	"github.com/shoplens/go-backend/internal/domain"
)

// FeatureSpace holds the catalog-wide bounds needed to normalize a product
// into a feature vector. Built per request cycle from the full catalog.
type FeatureSpace struct {
	minPrice float64
	maxPrice float64
	catIndex map[string]int
}

// NewFeatureSpace derives normalization bounds and the category one-hot
// layout from the catalog. Categories are laid out in sorted name order so
// the same catalog always produces the same vectors.
func NewFeatureSpace(products []*domain.Product) *FeatureSpace {
	s := &FeatureSpace{
		minPrice: math.Inf(1),
		maxPrice: math.Inf(-1),
		catIndex: make(map[string]int),
	}

	names := make([]string, 0, 8)
	for _, p := range products {
		price := p.Price()
		if price < s.minPrice {
			s.minPrice = price
		}
		if price > s.maxPrice {
			s.maxPrice = price
		}
		if _, ok := s.catIndex[p.Category]; !ok {
			s.catIndex[p.Category] = -1
			names = append(names, p.Category)
		}
	}

	sort.Strings(names)
	for i, name := range names {
		s.catIndex[name] = i
	}

	return s
}

// Vector builds the feature vector for a product:
// [normalized price, rating/5, discount/100, category one-hot...].
func (s *FeatureSpace) Vector(p *domain.Product) *domain.FeatureVector {
	return domain.NewFeatureVector(p.ID, s.rawVector(p.Price(), p.Rating, p.Discount, p.Category))
}

// ProfileVector builds a synthetic vector from a target profile instead of a
// catalog row.
func (s *FeatureSpace) ProfileVector(price, rating, discount float64, category string) []float64 {
	return s.rawVector(price, rating, discount, category)
}

func (s *FeatureSpace) rawVector(price, rating, discount float64, category string) []float64 {
	values := make([]float64, 3+len(s.catIndex))
	values[0] = s.normPrice(price)
	values[1] = rating / 5
	values[2] = discount / 100
	if idx, ok := s.catIndex[category]; ok {
		values[3+idx] = 1
	}
	return values
}

// NormPrice maps a dollar price onto [0, 1] within the catalog bounds.
func (s *FeatureSpace) NormPrice(price float64) float64 {
	return s.normPrice(price)
}

func (s *FeatureSpace) normPrice(price float64) float64 {
	if s.maxPrice <= s.minPrice {
		return 0
	}
	n := (price - s.minPrice) / (s.maxPrice - s.minPrice)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// HasCategory reports whether the category occurs in the catalog.
func (s *FeatureSpace) HasCategory(name string) bool {
	_, ok := s.catIndex[name]
	return ok
}

// cosine is the similarity metric between two feature vectors.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
