package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type teamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository
	log        *zap.SugaredLogger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, memberRepo repository.MemberRepository, log *zap.SugaredLogger) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		log:        log.Named("service.team"),
	}
}

// CreateTeam создает команду с уникальным именем
func (s *teamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("team_name is required")
	}

	existing, err := s.teamRepo.GetByName(ctx, name)
	if err == nil && existing != nil {
		return nil, domain.ErrTeamExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	team := domain.NewTeam(name)
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.ErrTeamExists
		}
		return nil, err
	}

	s.log.Infow("team created", "team_id", team.ID, "team_name", team.Name)

	return team, nil
}

// GetTeam получает команду по имени и ее участников
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.TeamWithMembers, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, notFound(err, "team with name "+name)
	}

	return s.withMembers(ctx, team)
}

func (s *teamService) GetTeamByID(ctx context.Context, id int64) (*domain.TeamWithMembers, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("team with id %d", id))
	}

	return s.withMembers(ctx, team)
}

func (s *teamService) ListTeams(ctx context.Context) (*domain.TeamDirectory, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roster := domain.NewRoster(members)

	directory := &domain.TeamDirectory{
		Teams:      make([]*domain.TeamWithMembers, 0, len(teams)),
		Unassigned: roster.Unassigned(),
	}
	for _, team := range teams {
		directory.Teams = append(directory.Teams, &domain.TeamWithMembers{
			Team:    team,
			Members: roster.MembersOf(team.ID),
		})
	}

	return directory, nil
}

func (s *teamService) withMembers(ctx context.Context, team *domain.Team) (*domain.TeamWithMembers, error) {
	members, err := s.memberRepo.FindByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &domain.TeamWithMembers{
		Team:    team,
		Members: members,
	}, nil
}

// notFound переводит repository.ErrNotFound в доменную ошибку NOT_FOUND
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return err
}
