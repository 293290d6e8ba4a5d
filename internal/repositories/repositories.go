package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
)

// ErrDuplicateEmail is returned by UserWriteRepository.Save when the email
// column's unique constraint rejects the insert.
var ErrDuplicateEmail = errors.New("email already registered")

// ext returns the transaction stored in the context by the tx middleware,
// falling back to the shared connection pool. Queries are written with `?`
// bindvars and rebound per driver, so the same repository works against
// both supported engines.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// logQuery logs an executed query in a single line
func logQuery(query string, args []any, err error) {
	logger.Log.Infow("executing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported engine (postgres 23505, sqlserver 2601/2627).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return msErr.Number == 2601 || msErr.Number == 2627
	}
	return false
}
