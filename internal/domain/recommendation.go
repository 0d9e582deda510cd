package domain

// Recommendation is one scored entry of a recommendation result.
type Recommendation struct {
	Product *Product
	Score   float64
}

func NewRecommendation(product *Product, score float64) Recommendation {
	return Recommendation{
		Product: product,
		Score:   score,
	}
}
