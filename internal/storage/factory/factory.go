package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/infix-calc/pkg/server"
)

// History bundles a history store with its health check and a release func.
type History struct {
	Store   storage.History
	Health  pkgserver.HealthChecker
	Cleanup func()
}

// NewHistory creates the history store selected by cfg.Type.
func NewHistory(ctx context.Context, cfg StorageConfig) (*History, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return &History{
			Store:   pg.NewHistoryStorer(pool),
			Health:  pg.NewHealthChecker(pool),
			Cleanup: pool.Close,
		}, nil

	case storage.InMem:
		return &History{
			Store:   in_mem.NewInMemStorer(cfg.InMemCapacity),
			Health:  pkgserver.NewOkHealthChecker(),
			Cleanup: func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
