package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
)

type teamRepository struct {
	conn
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{conn: newConn(db)}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.executor(ctx).QueryRowContext(ctx, query, team.Name, time.Now()).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert team: %w", mapError(err))
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	err := r.executor(ctx).QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get team %d: %w", id, mapError(err))
	}

	return team, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at
		FROM teams
		WHERE name = $1
	`

	team := &domain.Team{}
	err := r.executor(ctx).QueryRowContext(ctx, query, name).Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get team %q: %w", name, mapError(err))
	}

	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT id, name, created_at
		FROM teams
		ORDER BY id
	`

	rows, err := r.executor(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
