package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/member-search/internal/domain"
)

type statsRepository struct {
	conn
	qb sq.StatementBuilderType
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{conn: newConn(db), qb: psql()}
}

func (r *statsRepository) AgeStats(ctx context.Context) (*domain.AgeStats, error) {
	query := `
		SELECT COUNT(m.id),
		       COALESCE(SUM(m.age), 0),
		       COALESCE(AVG(m.age), 0)::float8,
		       COALESCE(MIN(m.age), 0),
		       COALESCE(MAX(m.age), 0)
		FROM members m
	`

	stats := &domain.AgeStats{}
	err := r.executor(ctx).QueryRowContext(ctx, query).Scan(
		&stats.Count,
		&stats.Sum,
		&stats.Avg,
		&stats.Min,
		&stats.Max,
	)
	if err != nil {
		return nil, fmt.Errorf("age stats: %w", err)
	}

	return stats, nil
}

func (r *statsRepository) TeamAgeStats(ctx context.Context, minAvgAge *float64) ([]*domain.TeamAgeStat, error) {
	builder := r.qb.
		Select("t.name", "COUNT(m.id)", "AVG(m.age)::float8").
		From("teams t").
		Join("members m ON m.team_id = t.id").
		GroupBy("t.name").
		OrderBy("t.name")
	if minAvgAge != nil {
		builder = builder.Having("AVG(m.age) >= ?", *minAvgAge)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build team stats query: %w", err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("team stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.TeamAgeStat, 0)
	for rows.Next() {
		stat := &domain.TeamAgeStat{}
		if err := rows.Scan(&stat.TeamName, &stat.MemberCount, &stat.AvgAge); err != nil {
			return nil, fmt.Errorf("scan team stats: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) AgeBrackets(ctx context.Context) ([]*domain.AgeBracketStat, error) {
	query := `
		SELECT bracket, COUNT(*)
		FROM (
			SELECT CASE
			           WHEN age BETWEEN 0 AND 20 THEN $1::text
			           WHEN age BETWEEN 21 AND 30 THEN $2::text
			           ELSE $3::text
			       END AS bracket
			FROM members
		) b
		GROUP BY bracket
		ORDER BY bracket
	`

	rows, err := r.executor(ctx).QueryContext(ctx, query,
		domain.BracketUpTo20,
		domain.Bracket21To30,
		domain.BracketOther,
	)
	if err != nil {
		return nil, fmt.Errorf("age brackets: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.AgeBracketStat, 0)
	for rows.Next() {
		stat := &domain.AgeBracketStat{}
		if err := rows.Scan(&stat.Bracket, &stat.Count); err != nil {
			return nil, fmt.Errorf("scan age bracket: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
