package sqlite

import (
	"context"
	"database/sql"

	"github.com/jimlawless/whereami"
	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/internal/domain"
	"github.com/shoplens/go-backend/internal/seed"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
	"github.com/shoplens/go-backend/pkg/tr"
)

// Seeder populates an empty store with the generated sample catalog.
type Seeder struct {
	db           *sql.DB
	productRepo  *ProductRepo
	categoryRepo *CategoryRepo
	cfg          *cfg.SeedCfg
	logger       logger.Logger
}

func NewSeeder(db *sql.DB, productRepo *ProductRepo, categoryRepo *CategoryRepo,
	cfg *cfg.SeedCfg, logger logger.Logger) *Seeder {
	return &Seeder{
		db:           db,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Seed inserts the sample catalog if the store is empty. Idempotent: a
// populated store is left untouched. All inserts run in one transaction.
func (s *Seeder) Seed(ctx context.Context) error {
	const op = "Seeder.Seed"

	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	if count > 0 {
		s.logger.Infof("catalog already seeded with %d products, skipping", count)
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	ctx = tr.WithTx(ctx, tx)

	categoryIDs := make(map[string]int64, len(seed.Categories))
	for _, name := range seed.Categories {
		category, cErr := s.categoryRepo.Create(ctx, domain.NewCategory(name))
		if cErr != nil {
			err = e.Wrap(op, cErr)
			return err
		}
		categoryIDs[name] = category.ID
	}

	products := seed.Generate(s.cfg.Size, s.cfg.RandomSeed)
	for _, sp := range products {
		product := domain.NewProduct(
			sp.Name, categoryIDs[sp.Category], sp.PriceCents,
			sp.Rating, sp.ReviewCount, sp.Discount,
		)
		if _, iErr := s.productRepo.Insert(ctx, product); iErr != nil {
			err = e.Wrap(whereami.WhereAmI(), iErr)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Infof("seeded catalog with %d products across %d categories", len(products), len(categoryIDs))
	return nil
}
