// Package analytics computes descriptive statistics over the catalog. All
// functions are pure and recomputed per request; nothing is cached.
package analytics

import (
	"math"
	"sort"

	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/domain"
)

// CategoryStats is the per-category roll-up.
type CategoryStats struct {
	Category     string
	Count        int64
	AvgPrice     float64 // dollars
	AvgRating    float64
	TotalReviews int64
}

// Bin is one fixed-width bucket of the price histogram.
type Bin struct {
	Low   float64
	High  float64
	Count int64
}

// Overview summarizes the whole catalog, including the least-squares fit of
// rating against price.
type Overview struct {
	Count          int64
	AvgPrice       float64
	AvgRating      float64
	TrendSlope     float64
	TrendIntercept float64
}

// DiscountStats summarizes the discounted share of the catalog: how deep the
// discounts run and whether discounting tracks rating.
type DiscountStats struct {
	DiscountedCount     int64
	AvgDiscount         float64
	AvgRatingDiscounted float64
	AvgRatingFullPrice  float64
	Histogram           []Bin   // fixed-width buckets over discount percentage
	TrendSlope          float64 // least-squares fit rating = slope*discount + intercept
	TrendIntercept      float64
}

type Aggregator struct {
	cfg *cfg.AnalyticsCfg
}

func New(cfg *cfg.AnalyticsCfg) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// CategoryStats rolls products up per category, sorted by category name.
func (a *Aggregator) CategoryStats(products []*domain.Product) []CategoryStats {
	byName := make(map[string]*CategoryStats)
	for _, p := range products {
		s, ok := byName[p.Category]
		if !ok {
			s = &CategoryStats{Category: p.Category}
			byName[p.Category] = s
		}
		s.Count++
		s.AvgPrice += p.Price()
		s.AvgRating += p.Rating
		s.TotalReviews += p.ReviewCount
	}

	stats := make([]CategoryStats, 0, len(byName))
	for _, s := range byName {
		s.AvgPrice /= float64(s.Count)
		s.AvgRating /= float64(s.Count)
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })

	return stats
}

// TopValue returns the n products with the highest composite value score.
// Equal scores keep catalog insertion order.
func (a *Aggregator) TopValue(products []*domain.Product, score func(*domain.Product) float64, n int) []domain.Recommendation {
	ranked := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, domain.NewRecommendation(p, score(p)))
	}
	return topN(ranked, n)
}

// TopRated returns the n best-rated products among those with at least
// minReviews reviews; 0 means the configured floor.
func (a *Aggregator) TopRated(products []*domain.Product, n, minReviews int) []domain.Recommendation {
	if minReviews <= 0 {
		minReviews = a.cfg.MinReviews
	}

	ranked := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		if p.ReviewCount < int64(minReviews) {
			continue
		}
		ranked = append(ranked, domain.NewRecommendation(p, p.Rating))
	}
	return topN(ranked, n)
}

// PriceHistogram buckets catalog prices into bins fixed-width buckets
// spanning [min price, max price]. Bin counts sum to the catalog size.
func (a *Aggregator) PriceHistogram(products []*domain.Product, bins int) []Bin {
	values := make([]float64, 0, len(products))
	for _, p := range products {
		values = append(values, p.Price())
	}
	return histogram(values, bins)
}

// DiscountStats aggregates the discounted products: discount depth histogram,
// mean rating of discounted vs full-price products, and the least-squares fit
// of rating against discount. Zero discount counts as full price.
func (a *Aggregator) DiscountStats(products []*domain.Product, bins int) DiscountStats {
	var s DiscountStats

	var fullPriceCount int64
	discounts := make([]float64, 0, len(products))
	ratings := make([]float64, 0, len(products))
	for _, p := range products {
		if p.Discount <= 0 {
			fullPriceCount++
			s.AvgRatingFullPrice += p.Rating
			continue
		}
		s.DiscountedCount++
		s.AvgDiscount += p.Discount
		s.AvgRatingDiscounted += p.Rating
		discounts = append(discounts, p.Discount)
		ratings = append(ratings, p.Rating)
	}

	if fullPriceCount > 0 {
		s.AvgRatingFullPrice /= float64(fullPriceCount)
	}
	if s.DiscountedCount == 0 {
		return s
	}
	s.AvgDiscount /= float64(s.DiscountedCount)
	s.AvgRatingDiscounted /= float64(s.DiscountedCount)

	s.Histogram = histogram(discounts, bins)
	s.TrendSlope, s.TrendIntercept = linearFit(discounts, ratings)

	return s
}

// Overview computes catalog-wide means and the rating-vs-price trend line.
func (a *Aggregator) Overview(products []*domain.Product) Overview {
	o := Overview{Count: int64(len(products))}
	if o.Count == 0 {
		return o
	}

	for _, p := range products {
		o.AvgPrice += p.Price()
		o.AvgRating += p.Rating
	}
	o.AvgPrice /= float64(o.Count)
	o.AvgRating /= float64(o.Count)

	prices := make([]float64, 0, len(products))
	ratings := make([]float64, 0, len(products))
	for _, p := range products {
		prices = append(prices, p.Price())
		ratings = append(ratings, p.Rating)
	}
	o.TrendSlope, o.TrendIntercept = linearFit(prices, ratings)

	return o
}

// histogram buckets values into bins fixed-width buckets spanning
// [min, max]. Counts sum to len(values).
func histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = min + float64(i)*width
		out[i].High = min + float64(i+1)*width
	}

	for _, v := range values {
		idx := bins - 1
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= bins { // the max value lands in the last bin
				idx = bins - 1
			}
		}
		out[idx].Count++
	}

	return out
}

// linearFit returns the least-squares fit y = slope*x + intercept. A constant
// x yields a zero slope.
func linearFit(xs, ys []float64) (slope, intercept float64) {
	if len(xs) == 0 {
		return 0, 0
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(len(xs))
	meanY /= float64(len(xs))

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx > 0 {
		slope = sxy / sxx
		intercept = meanY - slope*meanX
	}

	return slope, intercept
}

func topN(ranked []domain.Recommendation, n int) []domain.Recommendation {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
