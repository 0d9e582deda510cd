// Package recommender ranks catalog products against a reference product or
// a target profile. Scoring blends feature-vector similarity with a value
// heuristic; the weighting is configuration, not code.
package recommender

import (
	"sort"

	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/pkg/e"
)

// Profile is a synthetic reference point for recommendations without a
// concrete catalog product.
type Profile struct {
	Price    float64 // dollars
	Rating   float64
	Discount float64
	Category string
}

type Recommender struct {
	cfg *cfg.RecommenderCfg
}

func New(cfg *cfg.RecommenderCfg) *Recommender {
	return &Recommender{cfg: cfg}
}

// ValueScore is the composite price/rating/discount heuristic. Higher is
// better value for money.
func (r *Recommender) ValueScore(space *FeatureSpace, p *domain.Product) float64 {
	return r.cfg.RatingWeight*(p.Rating/5) +
		r.cfg.DiscountWeight*(p.Discount/100) +
		r.cfg.PriceWeight*(1-space.NormPrice(p.Price()))
}

// Recommend returns the top k products most similar in features and value to
// the reference product, excluding the reference itself. products must be in
// catalog insertion order; equal scores keep that order.
func (r *Recommender) Recommend(products []*domain.Product, refID int64, k int) ([]domain.Recommendation, error) {
	var ref *domain.Product
	for _, p := range products {
		if p.ID == refID {
			ref = p
			break
		}
	}
	if ref == nil {
		return nil, e.Wrap("recommender", e.ErrProductNotFound)
	}

	space := NewFeatureSpace(products)
	refVec := space.Vector(ref)

	scored := make([]domain.Recommendation, 0, len(products)-1)
	for _, p := range products {
		if p.ID == refID {
			continue
		}
		scored = append(scored, domain.NewRecommendation(p, r.score(space, refVec.Values, p)))
	}

	return top(scored, k), nil
}

// RecommendProfile ranks the whole catalog against a synthetic profile
// vector. There is no reference row, so nothing is excluded.
func (r *Recommender) RecommendProfile(products []*domain.Product, profile Profile, k int) []domain.Recommendation {
	space := NewFeatureSpace(products)
	refVec := space.ProfileVector(profile.Price, profile.Rating, profile.Discount, profile.Category)

	scored := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.NewRecommendation(p, r.score(space, refVec, p)))
	}

	return top(scored, k)
}

func (r *Recommender) score(space *FeatureSpace, refVec []float64, p *domain.Product) float64 {
	sim := cosine(refVec, space.Vector(p).Values)
	return r.cfg.SimWeight*sim + (1-r.cfg.SimWeight)*r.ValueScore(space, p)
}

// top sorts descending by score (stable, so catalog order breaks ties) and
// truncates to k.
func top(scored []domain.Recommendation, k int) []domain.Recommendation {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored
}
