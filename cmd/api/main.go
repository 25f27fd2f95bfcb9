package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sfpacim/finance-api/internal/api"
	"github.com/sfpacim/finance-api/internal/core/service"
	mongodb "github.com/sfpacim/finance-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sfpacim/finance-api/internal/infrastructure/db/redis"
	"github.com/sfpacim/finance-api/internal/infrastructure/queue"
	"github.com/sfpacim/finance-api/internal/pkg/config"
	"github.com/sfpacim/finance-api/pkg/logger"

	_ "github.com/sfpacim/finance-api/docs"
)

// @title           SFP-ACIM API
// @version         1.0
// @description     Backend de finanças pessoais: cadastro de usuários e autenticação via JWT.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	eventService := service.NewAuthEventService(mongodb.NewAuthEventRepository(db))
	dispatcher := queue.NewDispatcher(0, eventService, log)
	dispatcher.Start(ctx)

	e, err := api.NewRouter(db, rdb, cfg, log, dispatcher)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
