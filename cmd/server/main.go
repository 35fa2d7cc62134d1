package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/notarium/notary-api/internal/api"
	"github.com/notarium/notary-api/internal/infrastructure/config"
	mongodb "github.com/notarium/notary-api/internal/infrastructure/db/mongo"
	redisdb "github.com/notarium/notary-api/internal/infrastructure/db/redis"
	"github.com/notarium/notary-api/pkg/logger"
)

// @title           Notary Practice API
// @version         1.0
// @description     Record management service for a notary practice.
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

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	ensureIndexes(ctx, db, log)

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}

	log.Info().Msg("server stopped")
}

// ensureIndexes creates the MongoDB indexes the queries rely on. Creation is
// idempotent; a failure is logged but does not block startup.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	indexers := map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		"cases":        mongodb.NewCaseRepository(db),
		"appointments": mongodb.NewAppointmentRepository(db),
		"audit_logs":   mongodb.NewAuditRepository(db),
		"users":        mongodb.NewAuthRepository(db),
	}

	for name, idx := range indexers {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
