package seed

import "testing"

func TestGenerateSizeAndCategories(t *testing.T) {
	products := Generate(125, 42)
	if len(products) != 125 {
		t.Fatalf("expected 125 products, got %d", len(products))
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	if len(counts) != len(Categories) {
		t.Fatalf("expected %d categories, got %d", len(Categories), len(counts))
	}
	for _, c := range Categories {
		if counts[c] != 25 {
			t.Fatalf("category %s: expected 25 products, got %d", c, counts[c])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(125, 42)
	b := Generate(125, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("product %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateUniqueNames(t *testing.T) {
	products := Generate(125, 42)
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.Name] {
			t.Fatalf("duplicate name: %s", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestGenerateValueRanges(t *testing.T) {
	for _, p := range Generate(500, 7) {
		if p.PriceCents <= 0 {
			t.Fatalf("%s: non-positive price %d", p.Name, p.PriceCents)
		}
		if p.Rating < 1.0 || p.Rating > 5.0 {
			t.Fatalf("%s: rating out of range: %v", p.Name, p.Rating)
		}
		if p.ReviewCount < 0 {
			t.Fatalf("%s: negative review count: %d", p.Name, p.ReviewCount)
		}
		if p.Discount < 0 || p.Discount > 70 {
			t.Fatalf("%s: discount out of range: %v", p.Name, p.Discount)
		}
	}
}
