package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/predicate"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	return m.members(m.Called(ctx))
}

func (m *MockMemberRepository) FindAllSorted(ctx context.Context) ([]*domain.Member, error) {
	return m.members(m.Called(ctx))
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	return m.members(m.Called(ctx, username))
}

func (m *MockMemberRepository) FindByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error) {
	return m.members(m.Called(ctx, teamID))
}

func (m *MockMemberRepository) members(args mock.Arguments) ([]*domain.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

type MockMemberSearchRepository struct {
	mock.Mock
}

func (m *MockMemberSearchRepository) Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberTeamDto), args.Error(1)
}

func (m *MockMemberSearchRepository) SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberTeamDto), args.Error(1)
}

func (m *MockMemberSearchRepository) SearchMembers(ctx context.Context, cond domain.MemberSearchCondition) ([]*domain.Member, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberSearchRepository) SearchDtos(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberDto), args.Error(1)
}

func (m *MockMemberSearchRepository) SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error) {
	args := m.Called(ctx, cond, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.MemberTeamDto]), args.Error(1)
}

func (m *MockMemberSearchRepository) SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (*domain.Page[domain.MemberTeamDto], error) {
	args := m.Called(ctx, cond, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.MemberTeamDto]), args.Error(1)
}

type MockMemberBulkRepository struct {
	mock.Mock
}

func (m *MockMemberBulkRepository) UpdateUsername(ctx context.Context, where predicate.Expression, username string) (int64, error) {
	args := m.Called(ctx, where, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberBulkRepository) AddAge(ctx context.Context, delta int) (int64, error) {
	args := m.Called(ctx, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberBulkRepository) MultiplyAge(ctx context.Context, factor int) (int64, error) {
	args := m.Called(ctx, factor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberBulkRepository) Delete(ctx context.Context, where predicate.Expression) (int64, error) {
	args := m.Called(ctx, where)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) AgeStats(ctx context.Context) (*domain.AgeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgeStats), args.Error(1)
}

func (m *MockStatsRepository) TeamAgeStats(ctx context.Context, minAvgAge *float64) ([]*domain.TeamAgeStat, error) {
	args := m.Called(ctx, minAvgAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamAgeStat), args.Error(1)
}

func (m *MockStatsRepository) AgeBrackets(ctx context.Context) ([]*domain.AgeBracketStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AgeBracketStat), args.Error(1)
}

// MockTxManager фиксирует вызов Do и выполняет fn без транзакции.
// Ошибка, заданная через Return, возвращается до вызова fn.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
