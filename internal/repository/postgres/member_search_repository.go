package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/predicate"
	"github.com/bagdasarian/member-search/internal/search"
)

type memberSearchRepository struct {
	conn
	qb sq.StatementBuilderType
}

func NewMemberSearchRepository(db *sql.DB) *memberSearchRepository {
	return &memberSearchRepository{conn: newConn(db), qb: psql()}
}

// Search возвращает все строки, подходящие под фильтр, упорядоченные по id участника.
func (r *memberSearchRepository) Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	return r.fetchMemberTeams(ctx, r.selectMemberTeams(search.BuildPredicate(cond)))
}

func (r *memberSearchRepository) SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	return r.fetchMemberTeams(ctx, r.selectMemberTeams(search.BuildWithBuilder(cond)))
}

// SearchMembers - тот же фильтр, но результат - сами участники.
func (r *memberSearchRepository) SearchMembers(ctx context.Context, cond domain.MemberSearchCondition) ([]*domain.Member, error) {
	builder := r.qb.
		Select(
			search.Members.ID.Column(),
			search.Members.Username.Column(),
			search.Members.Age.Column(),
			search.Members.TeamID.Column(),
			search.MemberAlias+".created_at",
		).
		From(search.MemberTable).
		LeftJoin(search.JoinTeams()).
		OrderBy(search.Members.ID.Column())

	query, args, err := where(builder, search.BuildPredicate(cond)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

func (r *memberSearchRepository) SearchDtos(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error) {
	builder := r.qb.
		Select(search.Members.Username.Column(), search.Members.Age.Column()).
		From(search.MemberTable).
		LeftJoin(search.JoinTeams()).
		OrderBy(search.Members.ID.Column())

	query, args, err := where(builder, search.BuildPredicate(cond)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search member dtos: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MemberDto, 0)
	for rows.Next() {
		var dto domain.MemberDto
		var username sql.NullString
		if err := rows.Scan(&username, &dto.Age); err != nil {
			return nil, fmt.Errorf("scan member dto: %w", err)
		}
		dto.Username = username.String
		result = append(result, dto)
	}

	return result, rows.Err()
}

// SearchPageSimple получает страницу и общее количество одним запросом через COUNT(*) OVER().
// Если страница пуста, а offset ненулевой, количество добирается отдельным запросом.
func (r *memberSearchRepository) SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error) {
	p := search.BuildPredicate(cond)

	builder := r.selectMemberTeams(p).
		Column("COUNT(*) OVER() AS total_count").
		Offset(uint64(req.Offset())).
		Limit(uint64(req.Limit()))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}
	defer rows.Close()

	content := make([]domain.MemberTeamDto, 0, req.Limit())
	var total int64
	for rows.Next() {
		dto, err := scanMemberTeam(rows, &total)
		if err != nil {
			return nil, fmt.Errorf("scan member team: %w", err)
		}
		content = append(content, dto)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(content) == 0 && req.Offset() > 0 {
		total, err = r.count(ctx, p)
		if err != nil {
			return nil, err
		}
	}

	return domain.NewPage(content, req, total), nil
}

// SearchPageComplex разделяет запрос данных и запрос количества.
// Запрос количества не выполняется, если total можно вычислить по самой странице.
func (r *memberSearchRepository) SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error) {
	p := search.BuildPredicate(cond)

	content, err := r.fetchMemberTeams(ctx, r.selectMemberTeams(p).
		Offset(uint64(req.Offset())).
		Limit(uint64(req.Limit())))
	if err != nil {
		return nil, err
	}

	return domain.NewPageFromCount(content, req, func() (int64, error) {
		return r.count(ctx, p)
	})
}

func (r *memberSearchRepository) count(ctx context.Context, p predicate.Expression) (int64, error) {
	builder := r.qb.
		Select("COUNT(*)").
		From(search.MemberTable).
		LeftJoin(search.JoinTeams())

	query, args, err := where(builder, p).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}

	return total, nil
}

func (r *memberSearchRepository) selectMemberTeams(p predicate.Expression) sq.SelectBuilder {
	builder := r.qb.
		Select(
			search.Members.ID.Column(),
			search.Members.Username.Column(),
			search.Members.Age.Column(),
			search.Teams.ID.Column(),
			search.Teams.Name.Column(),
		).
		From(search.MemberTable).
		LeftJoin(search.JoinTeams()).
		OrderBy(search.Members.ID.Column())

	return where(builder, p)
}

func (r *memberSearchRepository) fetchMemberTeams(ctx context.Context, builder sq.SelectBuilder) ([]domain.MemberTeamDto, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MemberTeamDto, 0)
	for rows.Next() {
		dto, err := scanMemberTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member team: %w", err)
		}
		result = append(result, dto)
	}

	return result, rows.Err()
}

// scanMemberTeam читает строку проекции; extra - дополнительные колонки после основных.
func scanMemberTeam(row rowScanner, extra ...any) (domain.MemberTeamDto, error) {
	var dto domain.MemberTeamDto
	var username, teamName sql.NullString
	var teamID sql.NullInt64

	dest := append([]any{&dto.MemberID, &username, &dto.Age, &teamID, &teamName}, extra...)
	if err := row.Scan(dest...); err != nil {
		return dto, err
	}

	dto.Username = username.String
	dto.TeamID = idPtr(teamID)
	if teamName.Valid {
		name := teamName.String
		dto.TeamName = &name
	}

	return dto, nil
}

func where[B interface{ Where(any, ...any) B }](builder B, p predicate.Expression) B {
	if predicate.IsTrue(p) {
		return builder
	}
	return builder.Where(p)
}
