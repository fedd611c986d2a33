package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	// GetTeam возвращает команду вместе с участниками.
	GetTeam(ctx context.Context, name string) (*domain.TeamWithMembers, error)
	GetTeamByID(ctx context.Context, id int64) (*domain.TeamWithMembers, error)
	// ListTeams раскладывает всех участников по командам одним проходом.
	ListTeams(ctx context.Context) (*domain.TeamDirectory, error)
}
