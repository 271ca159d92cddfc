// Package repository holds the write-side pgx repositories used inside the
// unit of work.
package repository

import (
	"errors"

	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapPgErr classifies a pgx error into a RepositoryError kind so the
// usecase layer never sees driver codes.
func wrapPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	case isPgCode(err, pgErrCodeUniqueViolation):
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	case isPgCode(err, pgErrCodeForeignKeyViolation):
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
