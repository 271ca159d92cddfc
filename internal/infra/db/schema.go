package db

import (
	"context"
	_ "embed"

	"tour-booking-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates the tables if they do not exist. Used at test setup
// and by the server when RUN_MIGRATIONS is set.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "apply schema")
	}
	return nil
}
