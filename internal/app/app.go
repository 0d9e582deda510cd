package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	"github.com/shoplens/go-backend/internal/analytics"
	"github.com/shoplens/go-backend/internal/cfg"
	v1Http "github.com/shoplens/go-backend/internal/delivery/v1/http"
	"github.com/shoplens/go-backend/internal/recommender"
	repo "github.com/shoplens/go-backend/internal/repository/sqlite"
	"github.com/shoplens/go-backend/internal/repository/sqlite/converter"
	"github.com/shoplens/go-backend/internal/usecase"
	"github.com/shoplens/go-backend/pkg/closer"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
	"github.com/shoplens/go-backend/pkg/sqlite"
)

// App wires storage, seeding, business logic and the HTTP server together.
type App struct {
	cfg     *cfg.Config
	logger  logger.Logger
	db      *sqlite.Database
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *cfg.Config, logger logger.Logger) (*App, error) {
	db, err := initDB(logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productRepo := repo.NewProductRepo(db.DB, converter.NewProductConverterImpl())
	categoryRepo := repo.NewCategoryRepo(db.DB, converter.NewCategoryConverterImpl())

	seeder := repo.NewSeeder(db.DB, productRepo, categoryRepo, cfg.Seed, logger)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := seeder.Seed(seedCtx); err != nil {
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		categoryRepo,
		recommender.New(cfg.Recommender),
		analytics.New(cfg.Analytics),
		cfg.Recommender,
		cfg.Analytics,
		logger,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		return db.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal or a fatal
// server error, then drains through the closer.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initDB(logger logger.Logger, cfg *cfg.Config) (*sqlite.Database, error) {
	db, err := sqlite.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to open database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
