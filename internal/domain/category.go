package domain

import "time"

// Category is a fixed grouping label for products.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

func NewCategory(name string) *Category {
	return &Category{Name: name}
}
