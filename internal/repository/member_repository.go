package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/predicate"
)

type MemberRepository interface {
	// Save вставляет участника при ID == 0, иначе обновляет его.
	Save(ctx context.Context, member *domain.Member) error
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	FindAll(ctx context.Context) ([]*domain.Member, error)
	// FindAllSorted сортирует по возрасту по убыванию, затем по имени, NULL-имена в конце.
	FindAllSorted(ctx context.Context) ([]*domain.Member, error)
	// FindByUsername сортирует по возрасту по убыванию.
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	FindByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error)
}

// MemberSearchRepository выполняет динамический поиск по members LEFT JOIN teams.
type MemberSearchRepository interface {
	Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchMembers(ctx context.Context, cond domain.MemberSearchCondition) ([]*domain.Member, error)
	// SearchDtos - проекция только на имя и возраст.
	SearchDtos(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error)
	SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error)
	SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error)
}

// MemberBulkRepository выполняет массовые UPDATE/DELETE напрямую в базе.
// Ранее загруженные вызывающим кодом значения domain.Member после этого устаревают
// и не обновляются: их нужно перечитать.
type MemberBulkRepository interface {
	UpdateUsername(ctx context.Context, where predicate.Expression, username string) (int64, error)
	AddAge(ctx context.Context, delta int) (int64, error)
	MultiplyAge(ctx context.Context, factor int) (int64, error)
	Delete(ctx context.Context, where predicate.Expression) (int64, error)
}
