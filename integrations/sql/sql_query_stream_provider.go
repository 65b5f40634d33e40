package sql

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/shpandrak/shpancursor/cursor"
	"github.com/shpandrak/shpancursor/internal/util"
	"io"
	"log/slog"
)

// StreamSqlQuery creates a lazy stream over the rows of a query. The query runs on the first read, rows are
// scanned one at a time and kept, so the result set can be navigated in both directions.
// Failures to get the db, run the query or scan a row end the stream and are reported by its Err.
func StreamSqlQuery[T any](
	ctx context.Context,
	dbProvider func() (*sql.DB, error),
	query string,
	paramVals []any,
	scanner func(*sql.Rows) (T, error),
) cursor.Stream[T] {
	p := &sqlQueryStreamProvider[T]{
		dbProvider: dbProvider,
		query:      query,
		paramVals:  paramVals,
		scanner:    scanner,
	}
	return cursor.FromProvider(
		ctx,
		p.emit,
		cursor.WithOpenFuncOption(p.open),
		cursor.WithCloseFuncOption(p.close),
	)
}

type sqlQueryStreamProvider[T any] struct {
	dbProvider func() (*sql.DB, error)
	query      string
	paramVals  []any
	rows       *sql.Rows
	scanner    func(*sql.Rows) (T, error)
}

func (s *sqlQueryStreamProvider[T]) open(ctx context.Context) error {
	db, err := s.dbProvider()
	if err != nil {
		return fmt.Errorf("failed to get db for sql query stream: %w", err)
	}
	rows, err := db.QueryContext(
		ctx,
		s.query,
		s.paramVals...,
	)
	if err != nil {
		return fmt.Errorf("failed opening sql query stream: %w", err)
	}
	s.rows = rows
	return nil

}

func (s *sqlQueryStreamProvider[T]) close() {
	if s.rows != nil {
		if err := s.rows.Close(); err != nil {
			slog.Warn(fmt.Sprintf("error closing sql query stream rows: %v", err))
		}
		s.rows = nil
	}
}

func (s *sqlQueryStreamProvider[T]) emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	next := s.rows.Next()
	if !next {
		if err := s.rows.Err(); err != nil {
			return util.DefaultValue[T](), fmt.Errorf("error reading from sql query stream: %w", err)
		}
		return util.DefaultValue[T](), io.EOF
	}
	v, err := s.scanner(s.rows)
	if err != nil {
		return util.DefaultValue[T](), fmt.Errorf("failed scanning sql query stream row: %w", err)
	}
	return v, nil
}
