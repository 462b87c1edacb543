// @title                      CampusHub Events API
// @version                    1.0
// @description                Event management backend: user registration and login, admin event CRUD, per-user event registrations.
// @BasePath                   /
// @securityDefinitions.apikey TokenAuth
// @in                         header
// @name                       x-auth-token
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/campushub/events-api/docs"
	"github.com/campushub/events-api/internal/api"
	"github.com/campushub/events-api/internal/infrastructure/config"
	mongodb "github.com/campushub/events-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campushub/events-api/internal/infrastructure/db/redis"
	"github.com/campushub/events-api/internal/infrastructure/queue"
	"github.com/campushub/events-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index bootstrap failed")
	}
	eventRepo := mongodb.NewEventRepository(db)
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("event index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Audit:     dispatcher,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
