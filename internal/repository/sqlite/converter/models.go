package converter

import "time"

// ProductModel is one row of the products table joined with its category.
type ProductModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	CategoryID   int64     `db:"category_id"`
	CategoryName string    `db:"category_name"`
	Price        int64     `db:"price"` // cents
	Rating       float64   `db:"rating"`
	ReviewCount  int64     `db:"review_count"`
	Discount     float64   `db:"discount"`
	CreatedAt    time.Time `db:"created_at"`
}

// CategoryModel is one row of the categories table.
type CategoryModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
