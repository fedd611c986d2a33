package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/handler"
	"github.com/bagdasarian/member-search/internal/handler/server"
	"github.com/bagdasarian/member-search/internal/logger"
	"github.com/bagdasarian/member-search/internal/repository/postgres"
	"github.com/bagdasarian/member-search/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	database := db.MustLoad(cfg)
	logg.Info("successfully connected to database")
	defer database.Close()

	if cfg.Database.Migrate {
		if err := db.Migrate(context.Background(), database, logg); err != nil {
			logg.Fatalw("migration failed", "error", err)
		}
	}

	txManager, err := db.NewTxManager(database)
	if err != nil {
		logg.Fatalw("failed to create transaction manager", "error", err)
	}

	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	searchRepo := postgres.NewMemberSearchRepository(database)
	bulkRepo := postgres.NewMemberBulkRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	teamService := service.NewTeamService(teamRepo, memberRepo, logg)
	memberService := service.NewMemberService(txManager, teamRepo, memberRepo, bulkRepo, logg)
	searchService := service.NewSearchService(searchRepo)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(teamService, memberService, searchService, statsService, logg)
	srv := server.NewServer(h, cfg.Server.Addr, logg)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatalw("server forced to shutdown", "error", err)
	}
}
