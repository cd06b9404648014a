package repository

import (
	"context"
	"fmt"

	"famtree/internal/config"
	"famtree/internal/domain"
	"famtree/internal/pkg/db"
)

// Store is a FamilyRepository that owns its schema.
type Store interface {
	domain.FamilyRepository
	Migrate(ctx context.Context) error
}

// Open connects to the backend selected by cfg.DBDriver. The returned
// func releases the connection.
func Open(ctx context.Context, cfg config.Config) (Store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return NewSqliteFamilyRepo(sqlDB), func() { _ = sqlDB.Close() }, nil
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.PGDSN, cfg.PGMaxConns)
		if err != nil {
			return nil, nil, err
		}
		return NewPgFamilyRepo(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}
