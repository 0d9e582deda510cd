// Package seed generates the sample product catalog inserted on first run.
// Generation is driven by a fixed seed so the catalog is reproducible.
package seed

import (
	"fmt"
	"math"
	"math/rand"
)

// Categories is the fixed set of catalog categories.
var Categories = []string{"Electronics", "Home", "Toys", "Sports", "Beauty"}

// Product is one generated catalog row before it gets database identifiers.
type Product struct {
	Name        string
	Category    string
	PriceCents  int64
	Rating      float64
	ReviewCount int64
	Discount    float64
}

type categoryProfile struct {
	brands   []string
	nouns    []string
	minPrice float64 // dollars
	maxPrice float64
}

var profiles = map[string]categoryProfile{
	"Electronics": {
		brands:   []string{"Samsung", "Apple", "Xiaomi", "Huawei", "Lenovo", "Dell", "HP", "Asus"},
		nouns:    []string{"Headphones", "Smartwatch", "Tablet", "Speaker", "Monitor", "Keyboard", "Webcam", "Charger"},
		minPrice: 19.99,
		maxPrice: 1499.99,
	},
	"Home": {
		brands:   []string{"Ikea", "Philips", "Bosch", "Tefal", "Dyson"},
		nouns:    []string{"Lamp", "Blender", "Kettle", "Vacuum", "Toaster", "Cushion", "Shelf", "Fan"},
		minPrice: 9.99,
		maxPrice: 499.99,
	},
	"Toys": {
		brands:   []string{"Lego", "Hasbro", "Mattel", "Playmobil", "Ravensburger"},
		nouns:    []string{"Blocks", "Puzzle", "Robot", "Racer", "Plush", "Board Game", "Kit", "Figure"},
		minPrice: 4.99,
		maxPrice: 199.99,
	},
	"Sports": {
		brands:   []string{"Nike", "Adidas", "Puma", "Reebok", "Decathlon"},
		nouns:    []string{"Dumbbells", "Yoga Mat", "Running Shoes", "Backpack", "Jersey", "Racket", "Ball", "Gloves"},
		minPrice: 7.99,
		maxPrice: 299.99,
	},
	"Beauty": {
		brands:   []string{"Loreal", "Nivea", "Maybelline", "Garnier", "Dove"},
		nouns:    []string{"Serum", "Moisturizer", "Shampoo", "Lipstick", "Face Mask", "Perfume", "Cleanser", "Sunscreen"},
		minPrice: 2.99,
		maxPrice: 129.99,
	},
}

var adjectives = []string{"Pro", "Classic", "Ultra", "Compact", "Deluxe", "Essential", "Premium", "Sport"}

// Generate returns size products spread evenly across the fixed categories.
// The same seed always yields the same catalog, names included.
func Generate(size int, randomSeed int64) []Product {
	rng := rand.New(rand.NewSource(randomSeed))

	products := make([]Product, 0, size)
	for i := 0; i < size; i++ {
		category := Categories[i%len(Categories)]
		profile := profiles[category]

		brand := profile.brands[rng.Intn(len(profile.brands))]
		adjective := adjectives[rng.Intn(len(adjectives))]
		noun := profile.nouns[rng.Intn(len(profile.nouns))]

		// Serial suffix keeps names unique across the catalog.
		name := fmt.Sprintf("%s %s %s %d", brand, adjective, noun, i/len(Categories)+1)

		products = append(products, Product{
			Name:        name,
			Category:    category,
			PriceCents:  priceCents(rng, profile.minPrice, profile.maxPrice),
			Rating:      rating(rng),
			ReviewCount: reviewCount(rng),
			Discount:    discount(rng),
		})
	}

	return products
}

func priceCents(rng *rand.Rand, min, max float64) int64 {
	price := min + rng.Float64()*(max-min)
	return int64(math.Round(price * 100))
}

// rating yields one decimal place in [1.0, 5.0], skewed toward the top the
// way marketplace ratings are.
func rating(rng *rand.Rand) float64 {
	r := 5.0 - math.Abs(rng.NormFloat64())*0.8
	if r < 1.0 {
		r = 1.0
	}
	if r > 5.0 {
		r = 5.0
	}
	return math.Round(r*10) / 10
}

func reviewCount(rng *rand.Rand) int64 {
	// Long tail: most products have few reviews, a handful have thousands.
	return int64(math.Floor(rng.ExpFloat64() * 150))
}

// discount is 0 for most products, otherwise a multiple of 5 in [5, 70].
func discount(rng *rand.Rand) float64 {
	if rng.Float64() < 0.6 {
		return 0
	}
	return float64(5 * (1 + rng.Intn(14)))
}
