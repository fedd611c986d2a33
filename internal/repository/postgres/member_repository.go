package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type memberRepository struct {
	conn
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{conn: newConn(db)}
}

func (r *memberRepository) Save(ctx context.Context, member *domain.Member) error {
	if member.ID == 0 {
		return r.insert(ctx, member)
	}
	return r.update(ctx, member)
}

func (r *memberRepository) insert(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (username, age, team_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.executor(ctx).QueryRowContext(
		ctx,
		query,
		member.Username,
		member.Age,
		nullableID(member.TeamID),
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert member: %w", mapError(err))
	}

	return nil
}

func (r *memberRepository) update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET username = $2, age = $3, team_id = $4
		WHERE id = $1
	`

	result, err := r.executor(ctx).ExecContext(
		ctx,
		query,
		member.ID,
		member.Username,
		member.Age,
		nullableID(member.TeamID),
	)
	if err != nil {
		return fmt.Errorf("update member %d: %w", member.ID, mapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("update member %d: %w", member.ID, repository.ErrNotFound)
	}

	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT id, username, age, team_id, created_at
		FROM members
		WHERE id = $1
	`

	member, err := scanMember(r.executor(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get member %d: %w", id, mapError(err))
	}

	return member, nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	query := `
		SELECT id, username, age, team_id, created_at
		FROM members
		ORDER BY id
	`

	return r.queryMembers(ctx, query)
}

func (r *memberRepository) FindAllSorted(ctx context.Context) ([]*domain.Member, error) {
	query := `
		SELECT id, username, age, team_id, created_at
		FROM members
		ORDER BY age DESC, username ASC NULLS LAST
	`

	return r.queryMembers(ctx, query)
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	query := `
		SELECT id, username, age, team_id, created_at
		FROM members
		WHERE username = $1
		ORDER BY age DESC, id
	`

	return r.queryMembers(ctx, query, username)
}

func (r *memberRepository) FindByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error) {
	query := `
		SELECT id, username, age, team_id, created_at
		FROM members
		WHERE team_id = $1
		ORDER BY id
	`

	return r.queryMembers(ctx, query, teamID)
}

func (r *memberRepository) queryMembers(ctx context.Context, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	member := &domain.Member{}
	var username sql.NullString
	var teamID sql.NullInt64
	err := row.Scan(
		&member.ID,
		&username,
		&member.Age,
		&teamID,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.Username = username.String
	member.TeamID = idPtr(teamID)

	return member, nil
}

func scanMembers(rows *sql.Rows) ([]*domain.Member, error) {
	members := make([]*domain.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
