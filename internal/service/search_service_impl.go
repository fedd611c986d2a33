package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type searchService struct {
	searchRepo repository.MemberSearchRepository
}

func NewSearchService(searchRepo repository.MemberSearchRepository) SearchService {
	return &searchService{searchRepo: searchRepo}
}

func (s *searchService) Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	return s.searchRepo.Search(ctx, cond)
}

func (s *searchService) SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	return s.searchRepo.SearchByBuilder(ctx, cond)
}

func (s *searchService) SearchMembers(ctx context.Context, cond domain.MemberSearchCondition) ([]*domain.Member, error) {
	return s.searchRepo.SearchMembers(ctx, cond)
}

func (s *searchService) SearchDtos(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error) {
	return s.searchRepo.SearchDtos(ctx, cond)
}

// SearchPage проверяет запрос страницы и выполняет поиск выбранной стратегией.
// Границы возраста не проверяются: при AgeGoe > AgeLoe результат просто пуст.
func (s *searchService) SearchPage(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest, mode SearchMode) (*domain.Page[domain.MemberTeamDto], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch mode {
	case SearchModeSimple:
		return s.searchRepo.SearchPageSimple(ctx, cond, req)
	case SearchModeComplex, "":
		return s.searchRepo.SearchPageComplex(ctx, cond, req)
	}
	return nil, domain.NewBadRequestError("unknown search mode " + string(mode))
}
