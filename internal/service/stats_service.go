package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type StatsService interface {
	// GetStats собирает агрегаты по возрасту. minAvgAge ограничивает список команд.
	GetStats(ctx context.Context, minAvgAge *float64) (*domain.Stats, error)
}
