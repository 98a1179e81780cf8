package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"employee-admin/internal/models"
)

// Querier is the subset of pgxpool.Pool the stores need. pgxmock
// satisfies it too, which keeps repository tests off a live database.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

// translatePgError maps storage-level failures onto the domain
// taxonomy. The unique indexes are the authoritative duplicate signal.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "employees_email_key":
			return models.ErrDuplicateEmail
		case "employees_mobile_key":
			return models.ErrDuplicateMobile
		}
	}
	return err
}
