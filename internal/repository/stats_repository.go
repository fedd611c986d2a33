package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type StatsRepository interface {
	AgeStats(ctx context.Context) (*domain.AgeStats, error)
	// TeamAgeStats группирует по командам; minAvgAge, если задан, попадает в HAVING.
	TeamAgeStats(ctx context.Context, minAvgAge *float64) ([]*domain.TeamAgeStat, error)
	AgeBrackets(ctx context.Context) ([]*domain.AgeBracketStat, error)
}
