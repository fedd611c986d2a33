package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/member-search/internal/predicate"
	"github.com/bagdasarian/member-search/internal/search"
)

// memberBulkRepository выполняет массовые операции над members.
// Условия могут ссылаться только на колонки search.Members: JOIN здесь нет.
//
// Операции идут мимо уже загруженных domain.Member: структуры, прочитанные до
// массового обновления, остаются со старыми значениями до повторного чтения.
type memberBulkRepository struct {
	conn
	qb sq.StatementBuilderType
}

func NewMemberBulkRepository(db *sql.DB) *memberBulkRepository {
	return &memberBulkRepository{conn: newConn(db), qb: psql()}
}

func (r *memberBulkRepository) UpdateUsername(ctx context.Context, p predicate.Expression, username string) (int64, error) {
	builder := r.qb.
		Update(search.MemberTable).
		Set("username", username)

	return r.exec(ctx, where(builder, p))
}

func (r *memberBulkRepository) AddAge(ctx context.Context, delta int) (int64, error) {
	builder := r.qb.
		Update(search.MemberTable).
		Set("age", sq.Expr("age + ?", delta))

	return r.exec(ctx, builder)
}

func (r *memberBulkRepository) MultiplyAge(ctx context.Context, factor int) (int64, error) {
	builder := r.qb.
		Update(search.MemberTable).
		Set("age", sq.Expr("age * ?", factor))

	return r.exec(ctx, builder)
}

func (r *memberBulkRepository) Delete(ctx context.Context, p predicate.Expression) (int64, error) {
	builder := r.qb.Delete(search.MemberTable)

	return r.exec(ctx, where(builder, p))
}

func (r *memberBulkRepository) exec(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk statement: %w", err)
	}

	result, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk statement: %w", err)
	}

	return result.RowsAffected()
}
