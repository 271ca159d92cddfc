package bootstrap

import (
	"context"
	"os"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	// Apply the embedded schema on startup when asked to. Meant for local
	// development and e2e runs, not for production rollouts.
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.ApplySchema(context.Background(), pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
