package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/voxdigify/crm-api/internal/api"
	"github.com/voxdigify/crm-api/internal/infrastructure/config"
	mongodb "github.com/voxdigify/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/voxdigify/crm-api/internal/infrastructure/db/redis"
	"github.com/voxdigify/crm-api/internal/infrastructure/facebook"
	"github.com/voxdigify/crm-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title CRM API
// @version 1.0
// @description Customer relationship management API: leads, contacts, clients,
// @description calls, meetings, users and social page analytics.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg, err := mongodb.NewRegistry(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		if err := reg.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo close failed")
		}
	}()

	if err := mongodb.NewUserRepository(reg.Users).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	graph := facebook.NewClient(cfg.Facebook.GraphBaseURL,
		facebook.WithInstagramBaseURL(cfg.Instagram.GraphBaseURL))

	e := api.NewRouter(reg, rdb, graph, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
