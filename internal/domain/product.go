package domain

import "time"

// Product is one catalog row. The catalog is immutable after seeding.
type Product struct {
	ID          int64
	Name        string
	CategoryID  int64
	Category    string
	PriceCents  int64 // price is stored in cents
	Rating      float64
	ReviewCount int64
	Discount    float64 // percentage, 0-100
	CreatedAt   time.Time
}

func NewProduct(name string, categoryID int64, priceCents int64, rating float64, reviewCount int64, discount float64) *Product {
	return &Product{
		Name:        name,
		CategoryID:  categoryID,
		PriceCents:  priceCents,
		Rating:      rating,
		ReviewCount: reviewCount,
		Discount:    discount,
	}
}

// Price returns the price in dollars.
func (p *Product) Price() float64 {
	return float64(p.PriceCents) / 100
}
