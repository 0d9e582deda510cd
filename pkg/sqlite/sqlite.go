package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shoplens/go-backend/internal/cfg"
	"github.com/shoplens/go-backend/pkg/e"
	"github.com/shoplens/go-backend/pkg/logger"
)

// Database wraps the SQLite connection and migration handling.
type Database struct {
	DB  *sql.DB
	cfg *cfg.DBCfg
}

func NewDatabase(db *sql.DB, cfg *cfg.DBCfg) *Database {
	return &Database{DB: db, cfg: cfg}
}

// Connect opens (and creates, if absent) the SQLite database file.
func Connect(cfg *cfg.DBCfg) (*Database, error) {
	const op = "Database.Connect"

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// A single writer keeps the seeding transaction trivial; the catalog is
	// read-only afterwards.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDatabase(db, cfg), nil
}

func (d *Database) Ping() error {
	const op = "Database.Ping"
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := d.DB.PingContext(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// RunMigrations applies pending migrations from the db/migrations directory.
func (d *Database) RunMigrations(logger logger.Logger) error {
	const (
		op                 = "Database.RunMigrations"
		databaseDriverName = "sqlite3"
	)

	driver, err := sqlite3.WithInstance(d.DB, &sqlite3.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		d.cfg.MigrationsURL,
		databaseDriverName,
		driver,
	)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return e.Wrap(op, err)
	}

	logger.Infof("migrations applied successfully")
	return nil
}
