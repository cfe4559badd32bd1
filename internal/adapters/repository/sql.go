package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Queries are written with ? placeholders and passed through Rebind so the
// same repository code runs on SQLite (the default single-user setup) and
// Postgres (pgx or lib/pq).

const pgUniqueViolation = "23505"

// isUniqueViolation recognizes a unique-constraint error from any of the
// three supported drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}

func isPostgres(db *sqlx.DB) bool {
	switch db.DriverName() {
	case "pgx", "postgres":
		return true
	}
	return false
}

// insertReturningID runs an INSERT and yields the generated id. Postgres
// needs RETURNING; SQLite exposes LastInsertId.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	if isPostgres(db) {
		var id int64
		err := db.QueryRowContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
