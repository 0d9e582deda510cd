package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/repository/sqlite/converter"
	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

const testSchema = `
CREATE TABLE categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	category_id INTEGER NOT NULL REFERENCES categories(id),
	price INTEGER NOT NULL CHECK (price > 0),
	rating REAL NOT NULL CHECK (rating BETWEEN 1.0 AND 5.0),
	review_count INTEGER NOT NULL DEFAULT 0,
	discount REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_products_category_id ON products(category_id);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func newSeededRepos(t *testing.T) (*ProductRepo, *CategoryRepo) {
	t.Helper()
	db := newTestDB(t)
	productRepo := NewProductRepo(db, converter.NewProductConverterImpl())
	categoryRepo := NewCategoryRepo(db, converter.NewCategoryConverterImpl())

	seeder := NewSeeder(db, productRepo, categoryRepo,
		&cfg.SeedCfg{Size: 125, RandomSeed: 42}, logger.NewSlogLogger())
	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return productRepo, categoryRepo
}

func TestSeedPopulatesCatalog(t *testing.T) {
	productRepo, categoryRepo := newSeededRepos(t)

	count, err := productRepo.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 125 {
		t.Fatalf("expected 125 products, got %d", count)
	}

	categories, err := categoryRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := newTestDB(t)
	productRepo := NewProductRepo(db, converter.NewProductConverterImpl())
	categoryRepo := NewCategoryRepo(db, converter.NewCategoryConverterImpl())
	seeder := NewSeeder(db, productRepo, categoryRepo,
		&cfg.SeedCfg{Size: 125, RandomSeed: 42}, logger.NewSlogLogger())

	ctx := context.Background()
	if err := seeder.Seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	before, _ := productRepo.Count(ctx)

	if err := seeder.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	after, _ := productRepo.Count(ctx)

	if before != after {
		t.Fatalf("re-seeding changed row count: %d -> %d", before, after)
	}
}

func TestListOrderedByID(t *testing.T) {
	productRepo, _ := newSeededRepos(t)

	products, err := productRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if products[i].ID <= products[i-1].ID {
			t.Fatalf("catalog not in insertion order at %d", i)
		}
	}
	if products[0].Category == "" {
		t.Fatalf("category name not joined")
	}
}

func TestListFiltered(t *testing.T) {
	productRepo, _ := newSeededRepos(t)
	ctx := context.Background()

	byCategory, err := productRepo.ListFiltered(ctx, &usecase.ProductFilter{Category: "Electronics"})
	if err != nil {
		t.Fatalf("filter by category: %v", err)
	}
	if len(byCategory) != 25 {
		t.Fatalf("expected 25 Electronics products, got %d", len(byCategory))
	}
	for _, p := range byCategory {
		if p.Category != "Electronics" {
			t.Fatalf("filter leaked category %s", p.Category)
		}
	}

	min, max := int64(1000), int64(5000)
	byPrice, err := productRepo.ListFiltered(ctx, &usecase.ProductFilter{MinPriceCents: &min, MaxPriceCents: &max})
	if err != nil {
		t.Fatalf("filter by price: %v", err)
	}
	for _, p := range byPrice {
		if p.PriceCents < min || p.PriceCents > max {
			t.Fatalf("price %d outside [%d, %d]", p.PriceCents, min, max)
		}
	}

	empty, err := productRepo.ListFiltered(ctx, &usecase.ProductFilter{Category: "Groceries"})
	if err != nil {
		t.Fatalf("unknown category should not error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d", len(empty))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	productRepo, _ := newSeededRepos(t)

	_, err := productRepo.GetByID(context.Background(), 99999)
	if !errors.Is(err, e.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
