package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

// setupMemberRepo создает мок БД и репозиторий для Member
func setupMemberRepo(t *testing.T) (*memberRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMemberRepository(db), mock
}

// TestMemberRepository_Save - тест для метода Save()
func TestMemberRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("новый участник вставляется", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		now := time.Now()
		team := &domain.Team{ID: 1, Name: "teamA"}
		member := domain.NewMember("member1", 10, team)

		mock.ExpectQuery("INSERT INTO members").
			WithArgs("member1", 10, int64(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

		err := repo.Save(ctx, member)

		require.NoError(t, err)
		assert.Equal(t, int64(7), member.ID)
		assert.Equal(t, now, member.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("участник без команды вставляется с NULL", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("INSERT INTO members").
			WithArgs("loner", 30, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))

		err := repo.Save(ctx, domain.NewMember("loner", 30, nil))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("существующий участник обновляется", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		teamID := int64(2)
		member := &domain.Member{ID: 3, Username: "member3", Age: 31, TeamID: &teamID}

		mock.ExpectExec("UPDATE members").
			WithArgs(int64(3), "member3", 31, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, member)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: обновляемый участник не найден", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectExec("UPDATE members").
			WithArgs(int64(99), "ghost", 1, nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Save(ctx, &domain.Member{ID: 99, Username: "ghost", Age: 1})

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestMemberRepository_FindByID - тест для метода FindByID()
func TestMemberRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("участник с командой", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, age, team_id, created_at FROM members WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow(1, "member1", 10, 1, createdAt))

		member, err := repo.FindByID(ctx, 1)

		require.NoError(t, err)
		require.NotNil(t, member.TeamID)
		assert.Equal(t, int64(1), *member.TeamID)
		assert.Equal(t, "member1", member.Username)
		assert.Equal(t, 10, member.Age)
		assert.Equal(t, createdAt, member.CreatedAt)
	})

	t.Run("участник без команды и без имени", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("SELECT id, username, age, team_id, created_at FROM members").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow(5, nil, 0, nil, time.Now()))

		member, err := repo.FindByID(ctx, 5)

		require.NoError(t, err)
		assert.Nil(t, member.TeamID)
		assert.Empty(t, member.Username)
	})

	t.Run("ошибка: участник не найден", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery("SELECT id, username, age, team_id, created_at FROM members").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		member, err := repo.FindByID(ctx, 99)

		assert.Nil(t, member)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestMemberRepository_Finders(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("FindAllSorted", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		rows := sqlmock.NewRows(memberColumns).
			AddRow(6, "member6", 100, nil, now).
			AddRow(5, "member5", 100, nil, now).
			AddRow(7, nil, 100, nil, now)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY age DESC, username ASC NULLS LAST")).
			WillReturnRows(rows)

		members, err := repo.FindAllSorted(ctx)

		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, "member6", members[0].Username)
		assert.Equal(t, "", members[2].Username)
	})

	t.Run("FindByUsername", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1 ORDER BY age DESC, id")).
			WithArgs("member1").
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow(1, "member1", 10, 1, now))

		members, err := repo.FindByUsername(ctx, "member1")

		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, int64(1), members[0].ID)
	})

	t.Run("FindByTeamID", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE team_id = $1")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(memberColumns).
				AddRow(3, "member3", 30, 2, now).
				AddRow(4, "member4", 40, 2, now))

		members, err := repo.FindByTeamID(ctx, 2)

		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("ошибка базы данных", func(t *testing.T) {
		repo, mock := setupMemberRepo(t)

		expectedError := errors.New("database error")
		mock.ExpectQuery("SELECT id, username, age, team_id, created_at FROM members").
			WillReturnError(expectedError)

		members, err := repo.FindAll(ctx)

		assert.Nil(t, members)
		assert.True(t, errors.Is(err, expectedError))
	})
}
