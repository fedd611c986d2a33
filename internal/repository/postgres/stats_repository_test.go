package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/member-search/internal/domain"
)

// setupStatsRepo создает мок БД и репозиторий статистики
func setupStatsRepo(t *testing.T) (*statsRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewStatsRepository(db), mock
}

// TestStatsRepository_AgeStats - тест для метода AgeStats()
func TestStatsRepository_AgeStats(t *testing.T) {
	ctx := context.Background()

	t.Run("агрегаты по всем участникам", func(t *testing.T) {
		repo, mock := setupStatsRepo(t)

		mock.ExpectQuery("SELECT COUNT\\(m.id\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum", "avg", "min", "max"}).
				AddRow(4, 100, 25.0, 10, 40))

		stats, err := repo.AgeStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, &domain.AgeStats{Count: 4, Sum: 100, Avg: 25, Min: 10, Max: 40}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка базы данных", func(t *testing.T) {
		repo, mock := setupStatsRepo(t)

		expectedError := errors.New("database error")
		mock.ExpectQuery("SELECT COUNT").WillReturnError(expectedError)

		stats, err := repo.AgeStats(ctx)

		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, expectedError))
	})
}

// TestStatsRepository_TeamAgeStats - тест для метода TeamAgeStats()
func TestStatsRepository_TeamAgeStats(t *testing.T) {
	ctx := context.Background()
	columns := []string{"name", "count", "avg"}

	t.Run("без HAVING", func(t *testing.T) {
		repo, mock := setupStatsRepo(t)

		mock.ExpectQuery("^" + regexp.QuoteMeta("SELECT t.name, COUNT(m.id), AVG(m.age)::float8 FROM teams t JOIN members m ON m.team_id = t.id GROUP BY t.name ORDER BY t.name") + "$").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("teamA", 2, 15.0).
				AddRow("teamB", 2, 35.0))

		stats, err := repo.TeamAgeStats(ctx, nil)

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, &domain.TeamAgeStat{TeamName: "teamA", MemberCount: 2, AvgAge: 15}, stats[0])
		assert.Equal(t, &domain.TeamAgeStat{TeamName: "teamB", MemberCount: 2, AvgAge: 35}, stats[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("с HAVING по среднему возрасту", func(t *testing.T) {
		repo, mock := setupStatsRepo(t)

		minAvg := 20.0
		mock.ExpectQuery(regexp.QuoteMeta("GROUP BY t.name HAVING AVG(m.age) >= $1 ORDER BY t.name")).
			WithArgs(20.0).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("teamB", 2, 35.0))

		stats, err := repo.TeamAgeStats(ctx, &minAvg)

		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "teamB", stats[0].TeamName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestStatsRepository_AgeBrackets - тест для метода AgeBrackets()
func TestStatsRepository_AgeBrackets(t *testing.T) {
	repo, mock := setupStatsRepo(t)

	mock.ExpectQuery("SELECT bracket, COUNT\\(\\*\\)").
		WithArgs(domain.BracketUpTo20, domain.Bracket21To30, domain.BracketOther).
		WillReturnRows(sqlmock.NewRows([]string{"bracket", "count"}).
			AddRow("0~20", 2).
			AddRow("21~30", 1).
			AddRow("etc", 1))

	stats, err := repo.AgeBrackets(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, &domain.AgeBracketStat{Bracket: domain.BracketUpTo20, Count: 2}, stats[0])
	assert.Equal(t, &domain.AgeBracketStat{Bracket: domain.BracketOther, Count: 1}, stats[2])
	assert.NoError(t, mock.ExpectationsWereMet())
}
