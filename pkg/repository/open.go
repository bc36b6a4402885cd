package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/resumematch/pkg/analysis"
	"github.com/artem13815/resumematch/pkg/config"
	"github.com/artem13815/resumematch/pkg/health"
	"github.com/artem13815/resumematch/pkg/health/checkers"
	"github.com/artem13815/resumematch/pkg/repository/postgres"
	"github.com/artem13815/resumematch/pkg/repository/sqlite"
	"github.com/artem13815/resumematch/pkg/skill"
	pgstore "github.com/artem13815/resumematch/pkg/storage/postgres"
	sqlitestore "github.com/artem13815/resumematch/pkg/storage/sqlite"
)

var (
	ErrUnknownDriver   = errors.New("unknown store driver")
	ErrMissingDatabase = errors.New("DATABASE_URL is required for the postgres driver")
)

// Stores: хранилища каталога навыков и истории оценок на одном подключении.
type Stores struct {
	Skills  skill.Store
	History analysis.Repository
	Checker health.Checker
	Close   func()
}

// Open connects to the store selected by cfg.StoreDriver and prepares both schemas.
func Open(ctx context.Context, cfg config.Config) (Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Stores{}, ErrMissingDatabase
		}
		pool, err := pgstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Stores{}, err
		}
		skills, err := postgres.NewSkillRepository(pool)
		if err != nil {
			pool.Close()
			return Stores{}, fmt.Errorf("init skills schema: %w", err)
		}
		history, err := postgres.NewHistoryRepository(pool)
		if err != nil {
			pool.Close()
			return Stores{}, fmt.Errorf("init history schema: %w", err)
		}
		return Stores{
			Skills:  skills,
			History: history,
			Checker: checkers.NewPostgresChecker(pool),
			Close:   pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Stores{}, err
		}
		skills, err := sqlite.NewSkillRepository(db)
		if err != nil {
			_ = db.Close()
			return Stores{}, fmt.Errorf("init skills schema: %w", err)
		}
		history, err := sqlite.NewHistoryRepository(db)
		if err != nil {
			_ = db.Close()
			return Stores{}, fmt.Errorf("init history schema: %w", err)
		}
		return Stores{
			Skills:  skills,
			History: history,
			Checker: checkers.NewSQLiteChecker(db),
			Close:   func() { _ = db.Close() },
		}, nil
	}
	return Stores{}, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StoreDriver)
}

// SeedIfEmpty upserts defs into store when it holds no definitions yet.
// Returns the number of definitions written.
func SeedIfEmpty(ctx context.Context, store skill.Store, defs []skill.Definition) (int, error) {
	existing, err := store.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	return Seed(ctx, store, defs)
}

// Seed upserts every definition into store.
func Seed(ctx context.Context, store skill.Store, defs []skill.Definition) (int, error) {
	for i, d := range defs {
		if err := store.Upsert(ctx, d); err != nil {
			return i, fmt.Errorf("seed %q: %w", d.Name, err)
		}
	}
	return len(defs), nil
}
