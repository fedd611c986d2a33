package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/handler"
	"github.com/bagdasarian/member-search/internal/handler/server"
	"github.com/bagdasarian/member-search/internal/repository"
	"github.com/bagdasarian/member-search/internal/search"
	"github.com/bagdasarian/member-search/internal/service"
)

type testEnv struct {
	teams   *service.MockTeamRepository
	members *service.MockMemberRepository
	search  *service.MockMemberSearchRepository
	bulk    *service.MockMemberBulkRepository
	stats   *service.MockStatsRepository
	tx      *service.MockTxManager
	handler http.Handler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		teams:   new(service.MockTeamRepository),
		members: new(service.MockMemberRepository),
		search:  new(service.MockMemberSearchRepository),
		bulk:    new(service.MockMemberBulkRepository),
		stats:   new(service.MockStatsRepository),
		tx:      new(service.MockTxManager),
	}
	env.tx.On("Do", mock.Anything).Return(nil).Maybe()

	log := zap.NewNop().Sugar()
	h := handler.NewHandler(
		service.NewTeamService(env.teams, env.members, log),
		service.NewMemberService(env.tx, env.teams, env.members, env.bulk, log),
		service.NewSearchService(env.search),
		service.NewStatsService(env.stats),
		log,
	)
	env.handler = server.NewServer(h, ":0", log).Handler()

	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateTeam(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		env := setupEnv(t)

		env.teams.On("GetByName", mock.Anything, "teamA").Return(nil, repository.ErrNotFound).Once()
		env.teams.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			team := args.Get(1).(*domain.Team)
			team.ID = 1
			team.CreatedAt = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		}).Return(nil).Once()

		rec := env.do(http.MethodPost, "/team/add", `{"team_name":"teamA"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[handler.CreateTeamResponse](t, rec)
		assert.Equal(t, int64(1), resp.Team.TeamID)
		assert.Equal(t, "teamA", resp.Team.TeamName)
		assert.Equal(t, "2024-01-10T12:00:00Z", resp.Team.CreatedAt)
	})

	t.Run("ошибка: команда уже существует", func(t *testing.T) {
		env := setupEnv(t)

		env.teams.On("GetByName", mock.Anything, "teamA").Return(&domain.Team{ID: 1, Name: "teamA"}, nil).Once()

		rec := env.do(http.MethodPost, "/team/add", `{"team_name":"teamA"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[handler.ErrorResponse](t, rec)
		assert.Equal(t, domain.CodeTeamExists, resp.Error.Code)
	})

	t.Run("ошибка: некорректный JSON", func(t *testing.T) {
		env := setupEnv(t)

		rec := env.do(http.MethodPost, "/team/add", `{"team_name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeBadRequest, decode[handler.ErrorResponse](t, rec).Error.Code)
	})
}

func TestGetTeam(t *testing.T) {
	t.Run("команда с участниками", func(t *testing.T) {
		env := setupEnv(t)

		team := &domain.Team{ID: 1, Name: "teamA"}
		m1 := domain.NewMember("member1", 10, team)
		m1.ID = 1
		env.teams.On("GetByName", mock.Anything, "teamA").Return(team, nil).Once()
		env.members.On("FindByTeamID", mock.Anything, int64(1)).Return([]*domain.Member{m1}, nil).Once()

		rec := env.do(http.MethodGet, "/team/get?team_name=teamA", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[handler.TeamWithMembersResponse](t, rec)
		assert.Equal(t, "teamA", resp.TeamName)
		require.Len(t, resp.Members, 1)
		assert.Equal(t, "member1", resp.Members[0].Username)
	})

	t.Run("команда по team_id", func(t *testing.T) {
		env := setupEnv(t)

		team := &domain.Team{ID: 2, Name: "teamB"}
		env.teams.On("GetByID", mock.Anything, int64(2)).Return(team, nil).Once()
		env.members.On("FindByTeamID", mock.Anything, int64(2)).Return([]*domain.Member{}, nil).Once()

		rec := env.do(http.MethodGet, "/team/get?team_id=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[handler.TeamWithMembersResponse](t, rec)
		assert.Equal(t, "teamB", resp.TeamName)
		assert.NotNil(t, resp.Members)
		assert.Empty(t, resp.Members)
	})

	t.Run("ошибки параметров", func(t *testing.T) {
		env := setupEnv(t)

		for _, target := range []string{
			"/team/get",
			"/team/get?team_id=abc",
			"/team/get?team_id=1&team_name=teamA",
		} {
			rec := env.do(http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
		env.teams.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		env := setupEnv(t)

		env.teams.On("GetByName", mock.Anything, "unknown").Return(nil, repository.ErrNotFound).Once()

		rec := env.do(http.MethodGet, "/team/get?team_name=unknown", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.CodeNotFound, decode[handler.ErrorResponse](t, rec).Error.Code)
	})
}

func TestListTeams(t *testing.T) {
	env := setupEnv(t)

	teamA := &domain.Team{ID: 1, Name: "teamA"}
	teamB := &domain.Team{ID: 2, Name: "teamB"}
	member1 := domain.NewMember("member1", 10, teamA)
	member1.ID = 1
	loner := domain.NewMember("loner", 50, nil)
	loner.ID = 9
	env.teams.On("List", mock.Anything).Return([]*domain.Team{teamA, teamB}, nil).Once()
	env.members.On("FindAll", mock.Anything).Return([]*domain.Member{member1, loner}, nil).Once()

	rec := env.do(http.MethodGet, "/team/list", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.TeamDirectoryResponse](t, rec)
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "teamA", resp.Teams[0].TeamName)
	require.Len(t, resp.Teams[0].Members, 1)
	assert.Equal(t, int64(1), resp.Teams[0].Members[0].MemberID)
	assert.NotNil(t, resp.Teams[1].Members)
	assert.Empty(t, resp.Teams[1].Members)
	require.Len(t, resp.Unassigned, 1)
	assert.Equal(t, "loner", resp.Unassigned[0].Username)
	assert.Nil(t, resp.Unassigned[0].TeamID)
}

func TestMemberEndpoints(t *testing.T) {
	t.Run("добавление участника", func(t *testing.T) {
		env := setupEnv(t)

		env.teams.On("GetByName", mock.Anything, "teamA").Return(&domain.Team{ID: 1, Name: "teamA"}, nil).Once()
		env.members.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 5
		}).Return(nil).Once()

		rec := env.do(http.MethodPost, "/member/add", `{"username":"member1","age":10,"team_name":"teamA"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[handler.MemberEnvelope](t, rec)
		assert.Equal(t, int64(5), resp.Member.MemberID)
		require.NotNil(t, resp.Member.TeamID)
		assert.Equal(t, int64(1), *resp.Member.TeamID)
	})

	t.Run("получение участника", func(t *testing.T) {
		env := setupEnv(t)

		env.members.On("FindByID", mock.Anything, int64(5)).Return(&domain.Member{ID: 5, Username: "member1", Age: 10}, nil).Once()

		rec := env.do(http.MethodGet, "/member/get?member_id=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "member1", decode[handler.MemberEnvelope](t, rec).Member.Username)
	})

	t.Run("ошибка: member_id не число", func(t *testing.T) {
		env := setupEnv(t)

		rec := env.do(http.MethodGet, "/member/get?member_id=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("список участников", func(t *testing.T) {
		env := setupEnv(t)

		env.members.On("FindAllSorted", mock.Anything).Return([]*domain.Member{
			{ID: 4, Username: "member4", Age: 40},
			{ID: 1, Username: "member1", Age: 10},
		}, nil).Once()
		env.members.On("FindByUsername", mock.Anything, "member1").Return([]*domain.Member{
			{ID: 1, Username: "member1", Age: 10},
		}, nil).Once()

		rec := env.do(http.MethodGet, "/member/list", "")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]handler.MemberResponse](t, rec)
		require.Len(t, resp, 2)
		assert.Equal(t, "member4", resp[0].Username)

		rec = env.do(http.MethodGet, "/member/list?username=member1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]handler.MemberResponse](t, rec), 1)
		env.members.AssertExpectations(t)
	})

	t.Run("смена команды", func(t *testing.T) {
		env := setupEnv(t)

		member := domain.NewMember("member1", 10, &domain.Team{ID: 1})
		member.ID = 5
		env.members.On("FindByID", mock.Anything, int64(5)).Return(member, nil).Once()
		env.teams.On("GetByName", mock.Anything, "teamB").Return(&domain.Team{ID: 2, Name: "teamB"}, nil).Once()
		env.members.On("Save", mock.Anything, member).Return(nil).Once()

		rec := env.do(http.MethodPost, "/member/changeTeam", `{"member_id":5,"team_name":"teamB"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[handler.MemberEnvelope](t, rec)
		require.NotNil(t, resp.Member.TeamID)
		assert.Equal(t, int64(2), *resp.Member.TeamID)
	})
}

func TestSearchMembers(t *testing.T) {
	teamB := "teamB"
	teamBID := int64(2)
	rows := []domain.MemberTeamDto{
		{MemberID: 4, Username: "member4", Age: 40, TeamID: &teamBID, TeamName: &teamB},
	}

	t.Run("список по всем фильтрам", func(t *testing.T) {
		env := setupEnv(t)

		cond := domain.MemberSearchCondition{
			TeamName: "teamB",
			AgeGoe:   domain.IntPtr(35),
			AgeLoe:   domain.IntPtr(40),
		}
		env.search.On("Search", mock.Anything, cond).Return(rows, nil).Once()

		rec := env.do(http.MethodGet, "/member/search?team_name=teamB&age_goe=35&age_loe=40", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]handler.MemberTeamResponse](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, "member4", resp[0].Username)
		assert.Equal(t, "teamB", *resp[0].TeamName)
		env.search.AssertExpectations(t)
	})

	t.Run("страница в режиме simple", func(t *testing.T) {
		env := setupEnv(t)

		req := domain.NewPageRequest(0, 3)
		page := domain.NewPage(rows, req, 4)
		env.search.On("SearchPageSimple", mock.Anything, domain.MemberSearchCondition{}, req).Return(page, nil).Once()

		rec := env.do(http.MethodGet, "/member/search?page=0&size=3&mode=simple", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[handler.PageResponse](t, rec)
		assert.Equal(t, int64(4), resp.Total)
		assert.Equal(t, 2, resp.TotalPages)
		assert.Equal(t, 3, resp.Limit)
		assert.True(t, resp.HasNext)
	})

	t.Run("размер страницы по умолчанию и режим complex", func(t *testing.T) {
		env := setupEnv(t)

		req := domain.NewPageRequest(1, domain.DefaultPageSize)
		env.search.On("SearchPageComplex", mock.Anything, domain.MemberSearchCondition{}, req).
			Return(domain.NewPage[domain.MemberTeamDto](nil, req, 4), nil).Once()

		rec := env.do(http.MethodGet, "/member/search?page=1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[handler.PageResponse](t, rec)
		assert.NotNil(t, resp.Content)
		assert.Empty(t, resp.Content)
	})

	t.Run("проекции", func(t *testing.T) {
		env := setupEnv(t)

		cond := domain.MemberSearchCondition{Username: "member1"}
		env.search.On("SearchMembers", mock.Anything, cond).Return([]*domain.Member{{ID: 1, Username: "member1", Age: 10}}, nil).Once()
		env.search.On("SearchDtos", mock.Anything, cond).Return([]domain.MemberDto{{Username: "member1", Age: 10}}, nil).Once()

		rec := env.do(http.MethodGet, "/member/search?username=member1&projection=member", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(1), decode[[]handler.MemberResponse](t, rec)[0].MemberID)

		rec = env.do(http.MethodGet, "/member/search?username=member1&projection=short", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []handler.MemberShortResponse{{Username: "member1", Age: 10}}, decode[[]handler.MemberShortResponse](t, rec))
	})

	t.Run("style=builder", func(t *testing.T) {
		env := setupEnv(t)

		cond := domain.MemberSearchCondition{TeamName: "teamB"}
		env.search.On("SearchByBuilder", mock.Anything, cond).Return(rows, nil).Once()

		rec := env.do(http.MethodGet, "/member/search?team_name=teamB&style=builder", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]handler.MemberTeamResponse](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, "member4", resp[0].Username)
		env.search.AssertExpectations(t)
		env.search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("ошибки параметров", func(t *testing.T) {
		env := setupEnv(t)

		for _, target := range []string{
			"/member/search?age_goe=old",
			"/member/search?style=sql",
			"/member/search?style=builder&projection=short",
			"/member/search?page=0&projection=member",
			"/member/search?size=10&projection=short",
			"/member/search?page=0&style=builder",
			"/member/search?page=0&size=0",
			"/member/search?page=0&size=101",
			"/member/search?page=-1",
			"/member/search?page=184467440737095516&size=100",
			"/member/search?page=0&mode=fast",
			"/member/search?projection=full",
		} {
			rec := env.do(http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
		env.search.AssertExpectations(t)
	})
}

func TestBulkEndpoints(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		env := setupEnv(t)

		env.bulk.On("UpdateUsername", mock.Anything, search.Members.Age.Lt(28), "비회원").Return(int64(2), nil).Once()

		rec := env.do(http.MethodPost, "/member/bulk/rename", `{"age_below":28,"username":"비회원"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(2), decode[handler.BulkResponse](t, rec).Affected)
	})

	t.Run("age: delta", func(t *testing.T) {
		env := setupEnv(t)

		env.bulk.On("AddAge", mock.Anything, 1).Return(int64(4), nil).Once()

		rec := env.do(http.MethodPost, "/member/bulk/age", `{"delta":1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(4), decode[handler.BulkResponse](t, rec).Affected)
	})

	t.Run("age: factor", func(t *testing.T) {
		env := setupEnv(t)

		env.bulk.On("MultiplyAge", mock.Anything, 2).Return(int64(4), nil).Once()

		rec := env.do(http.MethodPost, "/member/bulk/age", `{"factor":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("age: ошибка, заданы оба поля", func(t *testing.T) {
		env := setupEnv(t)

		rec := env.do(http.MethodPost, "/member/bulk/age", `{"delta":1,"factor":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		env := setupEnv(t)

		env.bulk.On("Delete", mock.Anything, search.Members.Age.Gt(18)).Return(int64(3), nil).Once()

		rec := env.do(http.MethodPost, "/member/bulk/delete", `{"age_above":18}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), decode[handler.BulkResponse](t, rec).Affected)
	})

	t.Run("внутренняя ошибка", func(t *testing.T) {
		env := setupEnv(t)

		env.bulk.On("Delete", mock.Anything, mock.Anything).Return(int64(0), errors.New("database error")).Once()

		rec := env.do(http.MethodPost, "/member/bulk/delete", `{"age_above":18}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode[handler.ErrorResponse](t, rec).Error.Code)
	})
}

func TestGetStats(t *testing.T) {
	env := setupEnv(t)

	minAvg := 20.0
	env.stats.On("AgeStats", mock.Anything).Return(&domain.AgeStats{Count: 4, Sum: 100, Avg: 25, Min: 10, Max: 40}, nil).Once()
	env.stats.On("TeamAgeStats", mock.Anything, &minAvg).Return([]*domain.TeamAgeStat{{TeamName: "teamB", MemberCount: 2, AvgAge: 35}}, nil).Once()
	env.stats.On("AgeBrackets", mock.Anything).Return([]*domain.AgeBracketStat{{Bracket: domain.BracketOther, Count: 1}}, nil).Once()

	rec := env.do(http.MethodGet, "/stats?min_avg_age=20", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.StatsResponse](t, rec)
	assert.Equal(t, int64(4), resp.Overall.Count)
	assert.Equal(t, 25.0, resp.Overall.Avg)
	assert.Equal(t, []handler.TeamAgeStatResponse{{TeamName: "teamB", MemberCount: 2, AvgAge: 35}}, resp.Teams)
	assert.Equal(t, []handler.AgeBracketResponse{{Bracket: "etc", Count: 1}}, resp.Brackets)

	rec = env.do(http.MethodGet, "/stats?min_avg_age=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiddleware(t *testing.T) {
	t.Run("генерирует X-Request-ID", func(t *testing.T) {
		env := setupEnv(t)

		rec := env.do(http.MethodGet, "/healthz", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Header().Get(handler.RequestIDHeader), 36)
	})

	t.Run("сохраняет переданный X-Request-ID", func(t *testing.T) {
		var seen string
		h := handler.WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = handler.RequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(handler.RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(handler.RequestIDHeader))
	})

	t.Run("пустой контекст", func(t *testing.T) {
		assert.Empty(t, handler.RequestID(context.Background()))
	})
}
