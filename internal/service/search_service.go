package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

// SearchMode выбирает стратегию постраничного поиска.
type SearchMode string

const (
	// SearchModeSimple - данные и total одним запросом.
	SearchModeSimple SearchMode = "simple"
	// SearchModeComplex - отдельный запрос количества, который пропускается, когда это возможно.
	SearchModeComplex SearchMode = "complex"
)

// ParseSearchMode разбирает режим из строки. Пустая строка дает SearchModeComplex.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case "", SearchModeComplex:
		return SearchModeComplex, nil
	case SearchModeSimple:
		return SearchModeSimple, nil
	}
	return "", domain.NewBadRequestError("mode must be simple or complex")
}

type SearchService interface {
	Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchMembers(ctx context.Context, cond domain.MemberSearchCondition) ([]*domain.Member, error)
	SearchDtos(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error)
	SearchPage(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest, mode SearchMode) (*domain.Page[domain.MemberTeamDto], error)
}
