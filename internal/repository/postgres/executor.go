package postgres

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bagdasarian/member-search/internal/repository"
)

// DBExecutor - общее подмножество *sql.DB и *sql.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn выбирает исполнителя запроса для текущей единицы работы:
// транзакцию из контекста, если она открыта менеджером транзакций, иначе пул.
type conn struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

func newConn(db *sql.DB) conn {
	return conn{db: db, getter: trmsql.DefaultCtxGetter}
}

func (c conn) executor(ctx context.Context) DBExecutor {
	return c.getter.DefaultTrOrDB(ctx, c.db)
}

// psql - построитель запросов с плейсхолдерами $1, $2, ...
func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

const uniqueViolation = "23505"

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrAlreadyExists
	}
	return err
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
