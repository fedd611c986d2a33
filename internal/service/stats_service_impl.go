package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context, minAvgAge *float64) (*domain.Stats, error) {
	overall, err := s.statsRepo.AgeStats(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.statsRepo.TeamAgeStats(ctx, minAvgAge)
	if err != nil {
		return nil, err
	}

	brackets, err := s.statsRepo.AgeBrackets(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		Overall:  overall,
		Teams:    teams,
		Brackets: brackets,
	}, nil
}
