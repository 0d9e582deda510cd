package analytics

import (
	"sort"
	"strings"

	"github.com/shoplens/go-backend/internal/domain"
)

// knownBrands are matched case-insensitively against product names. Anything
// else rolls up under Other.
var knownBrands = []string{
	"samsung", "apple", "xiaomi", "huawei", "lenovo", "dell", "hp", "asus",
	"ikea", "philips", "bosch", "tefal", "dyson",
	"lego", "hasbro", "mattel", "playmobil", "ravensburger",
	"nike", "adidas", "puma", "reebok", "decathlon",
	"loreal", "nivea", "maybelline", "garnier", "dove",
}

const otherBrand = "Other"

// BrandStats is the per-brand roll-up.
type BrandStats struct {
	Brand        string
	Count        int64
	AvgPrice     float64
	AvgRating    float64
	TotalReviews int64
}

// ExtractBrand returns the brand a product name belongs to, or Other.
func ExtractBrand(name string) string {
	lower := strings.ToLower(name)
	for _, b := range knownBrands {
		if strings.Contains(lower, b) {
			return strings.ToUpper(b[:1]) + b[1:]
		}
	}
	return otherBrand
}

// BrandStats rolls products up per extracted brand, sorted by product count
// descending, name ascending on ties.
func (a *Aggregator) BrandStats(products []*domain.Product) []BrandStats {
	byBrand := make(map[string]*BrandStats)
	for _, p := range products {
		brand := ExtractBrand(p.Name)
		s, ok := byBrand[brand]
		if !ok {
			s = &BrandStats{Brand: brand}
			byBrand[brand] = s
		}
		s.Count++
		s.AvgPrice += p.Price()
		s.AvgRating += p.Rating
		s.TotalReviews += p.ReviewCount
	}

	stats := make([]BrandStats, 0, len(byBrand))
	for _, s := range byBrand {
		s.AvgPrice /= float64(s.Count)
		s.AvgRating /= float64(s.Count)
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Brand < stats[j].Brand
	})

	return stats
}
