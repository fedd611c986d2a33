//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/domain"
	repopg "github.com/bagdasarian/member-search/internal/repository/postgres"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	// Получаем DSN (connection string)
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Подключаемся к БД (используем pgx драйвер через stdlib)
	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)

	// Ждём готовности БД
	require.NoError(t, database.Ping())

	// Накатываем встроенные миграции
	require.NoError(t, db.Migrate(ctx, database, zap.NewNop().Sugar()), "не удалось применить миграции")

	// Автоматическая очистка после теста
	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// seedStandard создает teamA(member1, member2) и teamB(member3, member4) с возрастами 10..40.
func seedStandard(t *testing.T, database *sql.DB) (teamA, teamB *domain.Team) {
	ctx := context.Background()
	teams := repopg.NewTeamRepository(database)
	members := repopg.NewMemberRepository(database)

	teamA = domain.NewTeam("teamA")
	teamB = domain.NewTeam("teamB")
	require.NoError(t, teams.Create(ctx, teamA))
	require.NoError(t, teams.Create(ctx, teamB))

	for _, m := range []*domain.Member{
		domain.NewMember("member1", 10, teamA),
		domain.NewMember("member2", 20, teamA),
		domain.NewMember("member3", 30, teamB),
		domain.NewMember("member4", 40, teamB),
	} {
		require.NoError(t, members.Save(ctx, m))
	}

	return teamA, teamB
}
